package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{
			name: "paint subcategories grouped and connector stripped",
			in:   []string{"Peinture intérieure", "Peinture de rénovation", "Peinture"},
			want: "Peinture : intérieure, rénovation",
		},
		{
			name: "bare paint kept when no subcategories",
			in:   []string{"Plomberie", "Peinture"},
			want: "Peinture, Plomberie",
		},
		{
			name: "apostrophe connector",
			in:   []string{"Peinture d’extérieur"},
			want: "Peinture : extérieur",
		},
		{
			name: "straight apostrophe connector",
			in:   []string{"Peinture d' extérieur"},
			want: "Peinture : extérieur",
		},
		{
			name: "paint subs deduplicated in first-seen order",
			in:   []string{"Peinture intérieure", "Peinture intérieure", "Peinture extérieure"},
			want: "Peinture : intérieure, extérieure",
		},
		{
			name: "others deduplicated separately",
			in:   []string{"Plomberie", "Plomberie", "Électricité"},
			want: "Plomberie, Électricité",
		},
		{
			name: "paint-derived text comes first",
			in:   []string{"Plomberie", "Peinture décorative"},
			want: "Peinture : décorative, Plomberie",
		},
		{
			name: "empty input",
			in:   nil,
			want: "",
		},
		{
			name: "all-blank entries",
			in:   []string{"", "   ", "\t"},
			want: "",
		},
		{
			name: "surrounding whitespace trimmed before matching",
			in:   []string{"  Peinture  "},
			want: "Peinture",
		},
		{
			name: "lone connector survives as a subcategory",
			in:   []string{"Peinture de"},
			want: "Peinture : de",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatIdempotentOnCanonicalOutput(t *testing.T) {
	first := Format([]string{"Peinture intérieure", "Peinture de rénovation"})
	assert.Equal(t, "Peinture : intérieure, rénovation", first)

	// Feeding a canonical single-entry selection back through keeps the
	// semantic content stable.
	assert.Equal(t, "Peinture : intérieure", Format([]string{"Peinture intérieure"}))
	assert.Equal(t, "Peinture : intérieure", Format([]string{"Peinture intérieure", "Peinture intérieure"}))
}
