package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	cases := map[string]string{
		"plain text":                            "plain text",
		"<p>Hello <b>world</b></p>":             "Hello world",
		"<script>alert(1)</script>Safe":         "Safe",
		"Fish &amp; chips":                      "Fish & chips",
		"5 < 6 and <a href='http://x'>link</a>": "5 < 6 and link",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripMarkup(in), "input=%q", in)
	}
}
