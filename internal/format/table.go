// Package format renders planner lists and command results as text tables.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/cristianoliveira/trip-planner/internal/colors"
	"github.com/cristianoliveira/trip-planner/internal/domain"
)

const (
	columnSeparator = "  "
	emptyMarker     = "-"
	noEntries       = "(none)"
)

func newTable(header ...interface{}) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = columnSeparator
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	tbl.AddRow(header...)
	tbl.RightAlign(0)
	return tbl
}

func writeSection(w io.Writer, title string, tbl *uitable.Table, rows int) error {
	if _, err := fmt.Fprintln(w, colors.Header(title)); err != nil {
		return err
	}
	if rows == 0 {
		_, err := fmt.Fprintln(w, colors.Muted(noEntries))
		return err
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

// Contacts writes the contact list with 1-based indexes.
func Contacts(w io.Writer, contacts []domain.Contact) error {
	tbl := newTable("#", "NAME", "PHONE", "EMAIL", "ADDRESS", "TAGS")
	for i, c := range contacts {
		tbl.AddRow(i+1, c.Name, c.Phone, c.Email, c.Address, tags(c.Tags))
	}
	return writeSection(w, "Contacts", tbl, len(contacts))
}

// Activities writes the activity list with 1-based indexes.
func Activities(w io.Writer, activities []domain.Activity) error {
	tbl := newTable("#", "NAME", "ADDRESS", "DURATION", "PHONE", "TAGS")
	for i, a := range activities {
		tbl.AddRow(i+1, a.Name, a.Address, duration(a.Duration), orEmpty(a.Phone), tags(a.Tags))
	}
	return writeSection(w, "Activities", tbl, len(activities))
}

// Accommodations writes the accommodation list with 1-based indexes.
func Accommodations(w io.Writer, accommodations []domain.Accommodation) error {
	tbl := newTable("#", "NAME", "ADDRESS", "PHONE", "TAGS")
	for i, a := range accommodations {
		tbl.AddRow(i+1, a.Name, a.Address, orEmpty(a.Phone), tags(a.Tags))
	}
	return writeSection(w, "Accommodations", tbl, len(accommodations))
}

// Agenda writes every day and its scheduled activities in start order.
// A day with nothing scheduled gets a single free row.
func Agenda(w io.Writer, days []domain.Day) error {
	tbl := newTable("DAY", "TIME", "ACTIVITY", "ADDRESS")
	for i, day := range days {
		entries := day.Activities()
		if len(entries) == 0 {
			tbl.AddRow(i+1, emptyMarker, colors.Muted("free"), emptyMarker)
			continue
		}
		for j, e := range entries {
			label := ""
			if j == 0 {
				label = fmt.Sprint(i + 1)
			}
			tbl.AddRow(label, e.Start.String()+"-"+e.End.String(), e.Activity.Name, e.Activity.Address)
		}
	}
	return writeSection(w, "Agenda", tbl, len(days))
}

func tags(t []string) string {
	if len(t) == 0 {
		return emptyMarker
	}
	return strings.Join(t, ", ")
}

func orEmpty(s string) string {
	if s == "" {
		return emptyMarker
	}
	return s
}

func duration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}
