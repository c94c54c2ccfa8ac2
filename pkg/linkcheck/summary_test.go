package linkcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcurate/pkg/linkcheck"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	results := []linkcheck.Result{
		{URL: "https://github.com/a", StatusCode: 200, Category: "GitHub", Domain: "github.com"},
		{URL: "https://www.maine.gov/x", StatusCode: 404, Category: "Maine Government", Domain: "maine.gov"},
		{URL: "https://gist.github.com/b", StatusCode: 200, Category: "GitHub", Domain: "github.com"},
		{URL: "https://down.example", StatusCode: 0, Category: "Other", Domain: "down.example"},
	}

	summary := linkcheck.Summarize(results)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.InDelta(t, 50.0, summary.SuccessRate(), 0.001)
	assert.InDelta(t, 50.0, summary.FailureRate(), 0.001)
	assert.False(t, summary.Passed())

	assert.Equal(t, []linkcheck.CategoryCount{
		{Label: "GitHub", URLs: 2, Domains: 1},
		{Label: "Maine Government", URLs: 1, Domains: 1},
		{Label: "Other", URLs: 1, Domains: 1},
	}, summary.Categories)

	assert.Len(t, summary.Failures, 2)
	assert.Equal(t, "https://www.maine.gov/x", summary.Failures[0].URL)
	assert.Equal(t, "https://down.example", summary.Failures[1].URL)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	summary := linkcheck.Summarize(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Zero(t, summary.SuccessRate())
	assert.Zero(t, summary.FailureRate())
	assert.True(t, summary.Passed())
	assert.Empty(t, summary.Categories)
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OK", linkcheck.StatusOK.String())
	assert.Equal(t, "Error", linkcheck.StatusHTTPError.String())
	assert.Equal(t, "Timeout", linkcheck.StatusTimeout.String())
	assert.Equal(t, "Connection Error", linkcheck.StatusConnectionError.String())
	assert.Equal(t, "Request Error", linkcheck.StatusRequestError.String())
	assert.Equal(t, "Unknown", linkcheck.Status(99).String())
}
