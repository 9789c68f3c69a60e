package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Spice Garden":        "spice-garden",
		"  Spice   Garden  ":  "spice-garden",
		"Cafe & Grill":        "cafe-grill",
		"Biryani's #1 Corner": "biryani-s-1-corner",
		"ALLCAPS":             "allcaps",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
