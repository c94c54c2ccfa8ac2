package mdlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdcurate/pkg/mdlist"
)

func TestIsListItem(t *testing.T) {
	t.Parallel()

	assert.True(t, mdlist.IsListItem("- [Name](https://example.com) - desc"))
	assert.True(t, mdlist.IsListItem("  - [Indented](https://example.com)"))
	assert.False(t, mdlist.IsListItem("- plain bullet"))
	assert.False(t, mdlist.IsListItem("* [Star](https://example.com)"))
	assert.False(t, mdlist.IsListItem("### Heading"))
	assert.False(t, mdlist.IsListItem(""))
}

func TestSortKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "zebra", mdlist.SortKey("- [Zebra](https://z.example)"))
	assert.Equal(t, "apple", mdlist.SortKey("- [apple](https://a.example) [extra]"))
	assert.Equal(t, "- [unclosed", mdlist.SortKey("- [Unclosed"))
}

func TestItemNames(t *testing.T) {
	t.Parallel()

	body := "\n- [Beta](https://b.example)\n  - [Nested](https://n.example)\ntext [Inline](x)\n- [Alpha](https://a.example)\n"

	assert.Equal(t, []string{"Beta", "Alpha"}, mdlist.ItemNames(body))
}
