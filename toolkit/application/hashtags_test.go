package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seokit/toolkit/domain"
)

func TestGenerateHashtags_RanksByFrequencyThenFirstSeen(t *testing.T) {
	text := "Golang golang GoLang rocks. Café, café & coffee! The and with."
	res, err := GenerateHashtags(text, domain.HashtagOptions{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"#golang", "#cafe", "#rocks", "#coffee"}, res.Tags)
	assert.Equal(t, map[string]int{"golang": 3, "cafe": 2, "rocks": 1, "coffee": 1}, res.Keywords)
	assert.Equal(t, domain.PlatformInstagram, res.Platform)
	assert.Equal(t, 4, res.Generated)
}

func TestGenerateHashtags_RespectsMax(t *testing.T) {
	res, err := GenerateHashtags("alpha beta gamma delta alpha", domain.HashtagOptions{Max: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"#alpha", "#beta"}, res.Tags)
}

func TestGenerateHashtags_PopularInterleavedAndCapped(t *testing.T) {
	var words []string
	for i := range 60 {
		words = append(words, strings.Repeat(string(rune('a'+i%26)), 3+i/26))
	}
	text := strings.Join(words, " ")

	for _, p := range []domain.Platform{
		domain.PlatformInstagram, domain.PlatformTwitter, domain.PlatformTikTok,
		domain.PlatformLinkedIn, domain.PlatformYouTube, domain.PlatformFacebook,
	} {
		res, err := GenerateHashtags(text, domain.HashtagOptions{Platform: p, Max: 100, IncludePopular: true}, seeded(7))
		require.NoError(t, err)
		assert.Len(t, res.Tags, domain.MaxHashtagMax, "platform=%s", p)

		seen := map[string]bool{}
		for _, tag := range res.Tags {
			assert.True(t, strings.HasPrefix(tag, "#"), tag)
			assert.False(t, seen[tag], "duplicate %s", tag)
			seen[tag] = true
		}
		// a segunda tag vem da lista popular
		popular := popularTags[p]
		assert.Contains(t, popular, strings.TrimPrefix(res.Tags[1], "#"))
	}
}

func TestGenerateHashtags_ShuffleIsDeterministicWithSeed(t *testing.T) {
	opts := domain.HashtagOptions{Platform: domain.PlatformTikTok, IncludePopular: true}
	a, err := GenerateHashtags("dance video", opts, seeded(42))
	require.NoError(t, err)
	b, err := GenerateHashtags("dance video", opts, seeded(42))
	require.NoError(t, err)
	assert.Equal(t, a.Tags, b.Tags)
}

func TestGenerateHashtags_Errors(t *testing.T) {
	_, err := GenerateHashtags("   ", domain.HashtagOptions{}, nil)
	assert.Equal(t, "text", domain.FieldOf(err))

	_, err = GenerateHashtags("hello world", domain.HashtagOptions{Platform: "myspace"}, nil)
	assert.Equal(t, "platform", domain.FieldOf(err))
}

func TestGenerateHashtags_OnlyStopWords(t *testing.T) {
	res, err := GenerateHashtags("the and of to", domain.HashtagOptions{}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Tags)
}
