package mdlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcurate/pkg/mdlist"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Contents", "contents"},
		{"Data Sources", "data-sources"},
		{"Tools & Libraries", "tools--libraries"},
		{"State-Level Data", "state-level-data"},
		{"snake_case Heading", "snake_case-heading"},
		{"What's New?", "whats-new"},
		{"  Padded  ", "padded"},
		{"Données", "données"},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, mdlist.Slug(testCase.input), "input %q", testCase.input)
	}
}

func TestHeadingAnchors(t *testing.T) {
	t.Parallel()

	source := []byte("# Awesome List\n\n## Contents\n\n## Data *Sources*\n\n### Data Sources\n\nSetext\n------\n\n## [Linked](https://example.com) Heading\n")

	anchors := mdlist.HeadingAnchors(source)

	assert.Equal(t, []string{
		"awesome-list",
		"contents",
		"data-sources",
		"data-sources-1",
		"setext",
		"linked-heading",
	}, anchors.IDs())
	assert.Equal(t, 6, anchors.Len())
	assert.True(t, anchors.Has("data-sources-1"))
	assert.False(t, anchors.Has("missing"))
}

func TestHeadingAnchors_CodeSpan(t *testing.T) {
	t.Parallel()

	anchors := mdlist.HeadingAnchors([]byte("## The `mdcurate` Tool\n"))

	assert.True(t, anchors.Has("the-mdcurate-tool"))
}
