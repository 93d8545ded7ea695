package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Spoken English Bootcamp", "spoken-english-bootcamp"},
		{"  IELTS  Prep  2026  ", "ielts-prep-2026"},
		{"Beginner's Guide!", "beginners-guide"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestGenerateOrderNo(t *testing.T) {
	first := GenerateOrderNo()
	second := GenerateOrderNo()

	assert.True(t, strings.HasPrefix(first, "ORD-"))
	assert.Len(t, first, 12)
	assert.NotEqual(t, first, second)
}
