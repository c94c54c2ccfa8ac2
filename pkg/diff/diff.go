// Package diff renders the change a rewrite would make to a list file as a
// unified diff, so `mdcurate sort --diff` can preview a sort without writing.
package diff

import (
	"fmt"
	"strings"
)

// Op is the kind of a line in an edit script.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// ContextLines is the number of unchanged lines shown around each change.
const ContextLines = 3

// Line is one line of an edit script.
type Line struct {
	Op   Op
	Text string
}

// Hunk is a contiguous region of change plus its surrounding context.
// Starts are 1-based, following the unified diff header convention.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []Line
}

// Unified is the difference between two versions of a file.
type Unified struct {
	Path    string
	Hunks   []Hunk
	Added   int
	Removed int
}

// Compute diffs before against after. It returns nil when they are equal.
func Compute(path, before, after string) *Unified {
	if before == after {
		return nil
	}

	script := editScript(lines(before), lines(after))

	result := &Unified{Path: path}
	for _, line := range script {
		switch line.Op {
		case Insert:
			result.Added++
		case Delete:
			result.Removed++
		case Equal:
		}
	}

	result.Hunks = group(script, ContextLines)
	if len(result.Hunks) == 0 {
		return nil
	}
	return result
}

// Empty reports whether the diff has no changes.
func (u *Unified) Empty() bool {
	return u == nil || len(u.Hunks) == 0
}

// String renders the diff with ---/+++ headers.
func (u *Unified) String() string {
	if u.Empty() {
		return ""
	}

	path := strings.TrimPrefix(u.Path, "/")

	var out strings.Builder
	fmt.Fprintf(&out, "--- a/%s\n+++ b/%s\n", path, path)

	for _, hunk := range u.Hunks {
		fmt.Fprintf(&out, "@@ -%s +%s @@\n",
			span(hunk.OldStart, hunk.OldLines), span(hunk.NewStart, hunk.NewLines))
		for _, line := range hunk.Lines {
			out.WriteByte(prefix(line.Op))
			out.WriteString(line.Text)
			out.WriteByte('\n')
		}
	}

	return out.String()
}

func span(start, count int) string {
	if count == 0 {
		start--
	}
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

func prefix(op Op) byte {
	switch op {
	case Insert:
		return '+'
	case Delete:
		return '-'
	default:
		return ' '
	}
}

// lines splits text on newlines, dropping the empty element a trailing
// newline would leave.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// editScript walks an LCS table to turn before into after. At each change
// point deletions come before insertions.
func editScript(before, after []string) []Line {
	rows, cols := len(before), len(after)

	// common[i][j] is the LCS length of before[i:] and after[j:].
	common := make([][]int, rows+1)
	for i := range common {
		common[i] = make([]int, cols+1)
	}
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			if before[i] == after[j] {
				common[i][j] = common[i+1][j+1] + 1
			} else {
				common[i][j] = max(common[i+1][j], common[i][j+1])
			}
		}
	}

	script := make([]Line, 0, max(rows, cols))
	i, j := 0, 0
	for i < rows || j < cols {
		switch {
		case i < rows && j < cols && before[i] == after[j]:
			script = append(script, Line{Op: Equal, Text: before[i]})
			i++
			j++
		case j == cols || (i < rows && common[i+1][j] >= common[i][j+1]):
			script = append(script, Line{Op: Delete, Text: before[i]})
			i++
		default:
			script = append(script, Line{Op: Insert, Text: after[j]})
			j++
		}
	}

	return script
}

// group cuts the edit script into hunks, merging changes separated by no
// more than 2*context unchanged lines.
func group(script []Line, context int) []Hunk {
	type position struct{ old, new int }

	positions := make([]position, len(script))
	oldLine, newLine := 1, 1
	for idx, line := range script {
		positions[idx] = position{oldLine, newLine}
		if line.Op != Insert {
			oldLine++
		}
		if line.Op != Delete {
			newLine++
		}
	}

	var hunks []Hunk

	for idx := 0; idx < len(script); {
		if script[idx].Op == Equal {
			idx++
			continue
		}

		start := max(idx-context, 0)
		end := idx
		for cursor := idx; cursor < len(script); {
			if script[cursor].Op != Equal {
				cursor++
				end = cursor
				continue
			}
			run := cursor
			for run < len(script) && script[run].Op == Equal {
				run++
			}
			if run == len(script) || run-cursor > 2*context {
				break
			}
			cursor = run
		}
		stop := min(end+context, len(script))

		hunk := Hunk{OldStart: positions[start].old, NewStart: positions[start].new}
		for _, line := range script[start:stop] {
			hunk.Lines = append(hunk.Lines, line)
			if line.Op != Insert {
				hunk.OldLines++
			}
			if line.Op != Delete {
				hunk.NewLines++
			}
		}
		hunks = append(hunks, hunk)

		idx = stop
	}

	return hunks
}
