// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    []string
		notWant []string
	}{
		{
			name:   "plain text becomes a paragraph",
			source: "Village meeting on Sunday.",
			want:   []string{"<p>Village meeting on Sunday.</p>"},
		},
		{
			name:   "line breaks are kept",
			source: "First line\nSecond line",
			want:   []string{"First line<br>", "Second line"},
		},
		{
			name:   "hindi text passes through",
			source: "किसान सम्मेलन",
			want:   []string{"<p>किसान सम्मेलन</p>"},
		},
		{
			name:    "raw html is dropped",
			source:  "Hello <script>alert(1)</script> world",
			notWant: []string{"<script>"},
		},
		{
			name:   "gfm table",
			source: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:   []string{"<table>", "<td>1</td>"},
		},
		{
			name:   "emphasis and links",
			source: "**bold** and [site](https://example.org)",
			want:   []string{"<strong>bold</strong>", `<a href="https://example.org">site</a>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, got, w)
			}
		})
	}
}

func TestRender(t *testing.T) {
	got := string(Render("# Title"))
	assert.True(t, strings.HasPrefix(got, "<h1>"), got)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Title Body text here.", Excerpt("# Title\n\nBody *text* here.", 0))
	assert.Equal(t, "One two", Excerpt("One\ntwo", 100))
	assert.Equal(t, "Hello world", Excerpt("Hello <b>world</b>", 0))
	assert.Equal(t, "abc…", Excerpt("abcdef", 3))
	assert.Equal(t, "नमस्…", Excerpt("नमस्ते दुनिया", 4))
	assert.Equal(t, "", Excerpt("", 10))
}
