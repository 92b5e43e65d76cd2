package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seokit/toolkit/domain"
)

func testKit() Toolkit {
	return Toolkit{Gen: testGenerator(5)}
}

func TestToolkit_InvalidInputFailsWithoutWaiting(t *testing.T) {
	k := testKit()
	k.Delay = time.Hour

	start := time.Now()
	_, err := k.DNS().Run(context.Background(), domain.DomainRequest{Domain: "not a domain"})
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	_, err = k.ServerStatus().Run(context.Background(), domain.URLRequest{URL: "example.com"})
	assert.Equal(t, "url", domain.FieldOf(err))
	_, err = k.Rewrite().Run(context.Background(), domain.RewriteRequest{Text: "ok", Level: "ultra"})
	assert.Equal(t, "level", domain.FieldOf(err))
	_, err = k.Reverse().Run(context.Background(), domain.ReverseRequest{Text: "ok", Mode: "diagonal"})
	assert.Equal(t, "mode", domain.FieldOf(err))
	_, err = k.Earnings().Run(context.Background(), domain.EarningsInput{DailyViews: "many"})
	assert.Equal(t, "daily_views", domain.FieldOf(err))
	assert.Less(t, time.Since(start), time.Second)
}

func TestToolkit_SanitizesFreeText(t *testing.T) {
	k := testKit()
	k.Sanitize = func(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "<b>", ""), "</b>", "") }

	res, err := k.Rewrite().Run(context.Background(), domain.RewriteRequest{Text: "<b>good</b> news", Level: domain.LevelLight})
	require.NoError(t, err)
	assert.Equal(t, "great news", res.Output)

	_, err = k.Rewrite().Run(context.Background(), domain.RewriteRequest{Text: "<b></b>", Level: domain.LevelLight})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestToolkit_CanonicalURLDefaultsOptions(t *testing.T) {
	res, err := testKit().CanonicalURL().Run(context.Background(), domain.CanonicalURLRequest{URL: "http://Example.com/About_Us.html"})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/about-us", res.Canonical)
	assert.True(t, res.Changed)

	res, err = testKit().CanonicalURL().Run(context.Background(), domain.CanonicalURLRequest{
		URL:     "http://example.com/About_Us.html",
		Options: &domain.URLOptions{},
	})
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestToolkit_OperationNames(t *testing.T) {
	k := testKit()
	assert.Equal(t, "rewrite", k.Rewrite().Name)
	assert.Equal(t, "authority-bulk", k.BulkAuthority().Name)
	assert.Zero(t, k.BulkAuthority().Delay)
	assert.Zero(t, k.UserAgent().Delay)
}
