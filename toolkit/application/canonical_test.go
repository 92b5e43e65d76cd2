package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seokit/toolkit/domain"
)

func allURLOptions() []domain.URLOptions {
	var out []domain.URLOptions
	for mask := range 32 {
		out = append(out, domain.URLOptions{
			RemoveParameters: mask&1 != 0,
			UseHyphens:       mask&2 != 0,
			ForceLowercase:   mask&4 != 0,
			RemoveExtensions: mask&8 != 0,
			AddTrailingSlash: mask&16 != 0,
		})
	}
	return out
}

func TestCanonicalizeURL_Defaults(t *testing.T) {
	got, err := CanonicalizeURL(
		"https://Example.COM/Blog_Posts/My+First%20Post.HTML?utm_source=News&id=42#top",
		domain.DefaultURLOptions(),
	)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/blog-posts/my-first-post/utm-source/news/id/42", got)
}

func TestCanonicalizeURL_SingleSteps(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts domain.URLOptions
		want string
	}{
		{"nothing enabled keeps query", "http://EXAMPLE.com/A_b.html?x=1#frag", domain.URLOptions{}, "http://example.com/A_b.html?x=1"},
		{"extensions", "http://example.com/dir/page.php.html", domain.URLOptions{RemoveExtensions: true}, "http://example.com/dir/page"},
		{"extensions only on last segment", "http://example.com/a.html/b", domain.URLOptions{RemoveExtensions: true}, "http://example.com/a.html/b"},
		{"unknown extension kept", "http://example.com/file.pdf", domain.URLOptions{RemoveExtensions: true}, "http://example.com/file.pdf"},
		{"hyphens", "http://example.com/a__b+c/-d-", domain.URLOptions{UseHyphens: true}, "http://example.com/a-b-c/d"},
		{"lowercase", "http://example.com/Some/PATH", domain.URLOptions{ForceLowercase: true}, "http://example.com/some/path"},
		{"parameters in order", "http://example.com/p/?b=2&a=1", domain.URLOptions{RemoveParameters: true}, "http://example.com/p/b/2/a/1"},
		{"parameters on root", "http://example.com?a=1", domain.URLOptions{RemoveParameters: true}, "http://example.com/a/1"},
		{"trailing slash", "http://example.com/a?x=1", domain.URLOptions{AddTrailingSlash: true}, "http://example.com/a/?x=1"},
		{"trailing slash on bare host", "http://example.com", domain.URLOptions{AddTrailingSlash: true}, "http://example.com/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanonicalizeURL(tc.in, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanonicalizeURL_IsIdempotentForEveryOptionSet(t *testing.T) {
	inputs := []string{
		"https://Example.COM/Blog_Posts/My+First%20Post.HTML?utm_source=News&id=42#top",
		"http://EXAMPLE.com/Path_One/index.php.html/?a=b/c&d=",
		"https://example.com/?q=Hello+World",
		"http://example.com/__/x",
		"http://example.com/a.html/?Page=Index.HTML",
		"http://example.com",
		"http://example.com/?_=_",
		"https://example.com/dir/?sort=Price_Desc&&page=2",
		"http://Ex.com/? #f",
		"http://example.com/a b/?q= x &y=1 ",
	}
	for _, opts := range allURLOptions() {
		for _, in := range inputs {
			once, err := CanonicalizeURL(in, opts)
			require.NoError(t, err)
			twice, err := CanonicalizeURL(once, opts)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "opts=%+v input=%q", opts, in)
		}
	}
}

func TestCanonicalizeURL_KeptQueryEscapesSpaces(t *testing.T) {
	opts := domain.URLOptions{}
	got, err := CanonicalizeURL("http://Ex.com/? #f", opts)
	require.NoError(t, err)
	assert.Equal(t, "http://ex.com/?%20", got)

	got, err = CanonicalizeURL("http://ex.com/p?a=1 2", opts)
	require.NoError(t, err)
	assert.Equal(t, "http://ex.com/p?a=1%202", got)
}

func TestCanonicalizeURL_RejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "not a url", "ftp://example.com/a", "/relative/path"} {
		_, err := CanonicalizeURL(in, domain.DefaultURLOptions())
		assert.True(t, domain.IsKind(err, domain.KindValidation), "input=%q", in)
	}
}
