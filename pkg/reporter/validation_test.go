package reporter_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcurate/pkg/reporter"
	"github.com/yaklabco/mdcurate/pkg/validate"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	format, err := reporter.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, reporter.FormatText, format)

	format, err = reporter.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, reporter.FormatJSON, format)

	_, err = reporter.ParseFormat("sarif")
	require.Error(t, err)
}

func TestWriteValidation_TextPassed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report := &validate.Report{File: "README.md", Links: 12}

	require.NoError(t, reporter.WriteValidation(&buf, reporter.FormatText, report))

	assert.Equal(t, "Validating README.md...\nFound 12 links\n✅ All checks passed!\n", buf.String())
}

func TestWriteValidation_TextIssues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report := &validate.Report{
		File:   "list.md",
		Links:  3,
		Issues: []validate.Issue{"Missing awesome badge", "Section 'Data' is not alphabetically ordered"},
	}

	require.NoError(t, reporter.WriteValidation(&buf, reporter.FormatText, report))

	assert.Equal(t, "Validating list.md...\n"+
		"Found 3 links\n"+
		"\n"+
		"Issues found:\n"+
		"  - Missing awesome badge\n"+
		"  - Section 'Data' is not alphabetically ordered\n", buf.String())
}

func TestWriteValidation_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report := &validate.Report{
		File:   "README.md",
		Links:  2,
		Issues: []validate.Issue{"Duplicate URL: https://a.example used for: A, B"},
	}

	require.NoError(t, reporter.WriteValidation(&buf, reporter.FormatJSON, report))

	var got reporter.ValidationJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, reporter.ValidationJSON{
		File:   "README.md",
		Links:  2,
		Passed: false,
		Issues: []string{"Duplicate URL: https://a.example used for: A, B"},
	}, got)
}

func TestWriteValidation_JSONPassedHasEmptyIssues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, reporter.WriteValidation(&buf, reporter.FormatJSON, &validate.Report{File: "README.md"}))

	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"passed": true`)
}
