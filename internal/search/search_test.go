package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordProvider(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		entry    string
		keywords []string
		want     bool
	}{
		{name: "exact word", entry: "Night Safari", keywords: []string{"Safari"}, want: true},
		{name: "case sensitive by default", entry: "Night Safari", keywords: []string{"safari"}, want: false},
		{name: "case insensitive", opts: []Option{WithCaseInsensitive(true)}, entry: "Night Safari", keywords: []string{"safari"}, want: true},
		{name: "partial word", opts: []Option{WithCaseInsensitive(true)}, entry: "Night Safari", keywords: []string{"safa"}, want: false},
		{name: "any keyword", opts: []Option{WithCaseInsensitive(true)}, entry: "Botanic Gardens", keywords: []string{"zoo", "gardens"}, want: true},
		{name: "no keywords", entry: "Night Safari", keywords: nil, want: false},
		{name: "blank keyword", entry: "Night Safari", keywords: []string{"  "}, want: false},
		{name: "extra spaces in name", opts: []Option{WithCaseInsensitive(true)}, entry: "  Alex   Yeoh ", keywords: []string{"yeoh"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewWordProvider(tt.opts...)
			assert.Equal(t, tt.want, p.Match(tt.entry, tt.keywords))
		})
	}
}

func TestProviderName(t *testing.T) {
	assert.Equal(t, "word", NewWordProvider().Name())
}

func TestDefaultOptions(t *testing.T) {
	assert.False(t, DefaultOptions().CaseInsensitive)
	assert.True(t, applyOptions([]Option{WithCaseInsensitive(true)}).CaseInsensitive)
}
