package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcurate/pkg/mdlist"
	"github.com/yaklabco/mdcurate/pkg/validate"
)

const wellFormed = `# Awesome Parcels [![Awesome](https://awesome.re/badge.svg)](https://awesome.re)

## Contents

- [Data](#data)
- [Tools](#tools)

## Data

- [Alpha County](https://alpha.example/parcels)
- [beta County](https://beta.example/parcels)

## Tools

### Converters

- [Gamma](https://gamma.example)
- [Zeta](https://zeta.example)

### Viewers

- [Eta](https://eta.example)

## Contributing

See [the guide](./CONTRIBUTING.md).

## License

- [Zed](https://zed.example/license)
- [Abc](https://abc.example/license)
`

func TestValidate_WellFormedPasses(t *testing.T) {
	t.Parallel()

	rules := validate.DefaultRules()
	rules.CheckAnchors = true

	report := validate.New(rules).Validate("README.md", wellFormed)

	assert.Empty(t, report.Issues)
	assert.True(t, report.Passed())
	assert.Equal(t, "README.md", report.File)
	assert.Equal(t, 11, report.Links)
}

func TestCheckRequired(t *testing.T) {
	t.Parallel()

	issues := validate.CheckRequired("# Title\n\n## Other\n", validate.DefaultRules())

	assert.Equal(t, []validate.Issue{
		"Missing awesome badge",
		"Missing table of contents",
		"Missing contributing section",
	}, issues)
}

func TestCheckRequired_CustomSection(t *testing.T) {
	t.Parallel()

	rules := validate.Rules{RequiredSections: []string{"Data Sources"}}

	assert.Equal(t, []validate.Issue{"Missing data sources section"},
		validate.CheckRequired("## Data\n", rules))
	assert.Empty(t, validate.CheckRequired("## Data Sources\n", rules))
}

func TestCheckDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("duplicate URL names every link", func(t *testing.T) {
		t.Parallel()

		links := mdlist.ExtractLinks("[A](http://x) [B](http://x)")
		issues := validate.CheckDuplicates(links)

		require.Len(t, issues, 1)
		assert.Equal(t, validate.Issue("Duplicate URL: http://x used for: A, B"), issues[0])
	})

	t.Run("duplicate name is case-insensitive", func(t *testing.T) {
		t.Parallel()

		links := mdlist.ExtractLinks("[Parcels](https://one.example) [PARCELS](https://two.example)")
		issues := validate.CheckDuplicates(links)

		assert.Equal(t, []validate.Issue{
			"Duplicate name: parcels used for: https://one.example, https://two.example",
		}, issues)
	})

	t.Run("same link twice reports both", func(t *testing.T) {
		t.Parallel()

		links := mdlist.ExtractLinks("[A](https://a.example) [A](https://a.example)")
		issues := validate.CheckDuplicates(links)

		assert.Equal(t, []validate.Issue{
			"Duplicate URL: https://a.example used for: A, A",
			"Duplicate name: a used for: https://a.example, https://a.example",
		}, issues)
	})

	t.Run("unique links produce nothing", func(t *testing.T) {
		t.Parallel()

		links := mdlist.ExtractLinks("[A](https://a.example) [B](https://b.example)")
		assert.Empty(t, validate.CheckDuplicates(links))
	})
}

func TestCheckHTTPS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		flagged bool
	}{
		{"plain http is flagged", "[A](http://example.com)", true},
		{"https passes", "[A](https://example.com)", false},
		{"localhost passes", "[A](http://localhost)", false},
		{"localhost with port passes", "[A](http://localhost:8080/x)", false},
		{"loopback IPv4 passes", "[A](http://127.0.0.1/x)", false},
		{"loopback IPv6 passes", "[A](http://[::1]:3000)", false},
		{"anchor ignored", "[A](#section)", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			issues := validate.CheckHTTPS(mdlist.ExtractLinks(testCase.content))
			if !testCase.flagged {
				assert.Empty(t, issues)
				return
			}
			assert.Equal(t, []validate.Issue{
				"HTTP links found (consider HTTPS):",
				validate.Issue("  - A: " + mdlist.ExtractLinks(testCase.content)[0].URL),
			}, issues)
		})
	}
}

func TestCheckOrder(t *testing.T) {
	t.Parallel()

	t.Run("out of order section", func(t *testing.T) {
		t.Parallel()

		content := "## Data\n- [B](https://b.example)\n- [A](https://a.example)\n"
		issues := validate.CheckOrder(content, nil)

		require.Len(t, issues, 1)
		assert.Contains(t, string(issues[0]), "is not alphabetically ordered")
		assert.Contains(t, string(issues[0]), "Data")
	})

	t.Run("ordered section", func(t *testing.T) {
		t.Parallel()

		content := "## Data\n- [A](https://a.example)\n- [B](https://b.example)\n"
		assert.Empty(t, validate.CheckOrder(content, nil))
	})

	t.Run("case-insensitive comparison", func(t *testing.T) {
		t.Parallel()

		content := "## Data\n- [apple](https://a.example)\n- [Banana](https://b.example)\n"
		assert.Empty(t, validate.CheckOrder(content, nil))
	})

	t.Run("exempt sections skipped", func(t *testing.T) {
		t.Parallel()

		content := "## License\n- [B](https://b.example)\n- [A](https://a.example)\n"
		assert.Empty(t, validate.CheckOrder(content, []string{"License"}))
	})

	t.Run("subsections checked separately", func(t *testing.T) {
		t.Parallel()

		content := strings.Join([]string{
			"## Tools",
			"- [Zulu](https://z.example)",
			"- [Alpha](https://a.example)",
			"### Good",
			"- [A](https://a.example/1)",
			"- [B](https://b.example/1)",
			"### Bad",
			"- [D](https://d.example)",
			"- [C](https://c.example)",
		}, "\n")

		issues := validate.CheckOrder(content, nil)

		assert.Equal(t, []validate.Issue{
			"Subsection 'Bad' in 'Tools' is not alphabetically ordered",
		}, issues)
	})

	t.Run("indented entries ignored", func(t *testing.T) {
		t.Parallel()

		content := "## Data\n- [A](https://a.example)\n  - [Z](https://z.example)\n- [B](https://b.example)\n"
		assert.Empty(t, validate.CheckOrder(content, nil))
	})
}

func TestCheckNameLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 101)
	links := []mdlist.Link{
		{Text: long, URL: "https://long.example"},
		{Text: strings.Repeat("é", 100), URL: "https://accent.example"},
	}

	issues := validate.CheckNameLength(links, validate.DefaultMaxNameLength)

	assert.Equal(t, []validate.Issue{validate.Issue(long + ": Name too long (101 chars)")}, issues)
	assert.Empty(t, validate.CheckNameLength(links, 0))
}

func TestCheckAnchors(t *testing.T) {
	t.Parallel()

	content := "## Contents\n- [Data](#data)\n- [Gone](#gone)\n- [Spaced](#data%20sources)\n## Data\n"

	issues := validate.CheckAnchors(content, mdlist.ExtractLinks(content))

	assert.Equal(t, []validate.Issue{
		"Broken anchor: Gone -> #gone",
		"Broken anchor: Spaced -> #data%20sources",
	}, issues)
}

func TestValidate_CollectsAllFindingsInOrder(t *testing.T) {
	t.Parallel()

	content := "## Data\n- [B](http://x.example)\n- [A](http://x.example)\n"

	report := validate.New(validate.DefaultRules()).Validate("list.md", content)

	assert.False(t, report.Passed())
	assert.Equal(t, []validate.Issue{
		"Missing awesome badge",
		"Missing table of contents",
		"Missing contributing section",
		"Duplicate URL: http://x.example used for: B, A",
		"HTTP links found (consider HTTPS):",
		"  - B: http://x.example",
		"  - A: http://x.example",
		"Section 'Data' is not alphabetically ordered",
	}, report.Issues)
}

func TestValidate_AnchorsOptIn(t *testing.T) {
	t.Parallel()

	content := wellFormed + "\n[Missing](#nowhere)\n"

	withoutAnchors := validate.New(validate.DefaultRules()).Validate("README.md", content)
	assert.True(t, withoutAnchors.Passed())

	rules := validate.DefaultRules()
	rules.CheckAnchors = true
	withAnchors := validate.New(rules).Validate("README.md", content)
	assert.Equal(t, []validate.Issue{"Broken anchor: Missing -> #nowhere"}, withAnchors.Issues)
}
