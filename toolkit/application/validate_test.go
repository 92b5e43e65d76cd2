package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seokit/toolkit/domain"
)

func TestNormalizeDomain(t *testing.T) {
	ok := map[string]string{
		"example.com":                           "example.com",
		"  Example.COM  ":                       "example.com",
		"www.example.com.":                      "www.example.com",
		"https://WWW.Example.com:8080/path?q=1": "www.example.com",
		"sub.domain.co.uk/page":                 "sub.domain.co.uk",
		"my-site.io":                            "my-site.io",
	}
	for in, want := range ok {
		got, err := NormalizeDomain("test", in)
		require.NoError(t, err, "input=%q", in)
		assert.Equal(t, want, got)
	}

	bad := []string{"localhost", "exa_mple.com", "-bad.com", "bad-.com", "example.c0m", "a..com", "http://", "192.168.0.1"}
	for _, in := range bad {
		_, err := NormalizeDomain("test", in)
		assert.ErrorIs(t, err, domain.ErrInvalidDomain, "input=%q", in)
		assert.Equal(t, "domain", domain.FieldOf(err))
	}

	_, err := NormalizeDomain("test", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestParseHTTPURL(t *testing.T) {
	u, err := ParseHTTPURL("test", " https://example.com/a ")
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Host)

	for _, in := range []string{"example.com", "ftp://example.com", "https://", "mailto:a@b.com", "::"} {
		_, err := ParseHTTPURL("test", in)
		assert.True(t, domain.IsKind(err, domain.KindValidation), "input=%q", in)
		assert.Equal(t, "url", domain.FieldOf(err))
	}
}

func TestParseNumber(t *testing.T) {
	f, err := ParseNumber("test", "n", " 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, f)

	for _, in := range []string{"abc", "NaN", "Inf", "-1", "1e400"} {
		_, err := ParseNumber("test", "n", in)
		assert.ErrorIs(t, err, domain.ErrInvalidNumber, "input=%q", in)
		assert.Equal(t, "n", domain.FieldOf(err))
	}
	_, err = ParseNumber("test", "n", "")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}
