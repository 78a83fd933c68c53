package fix

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

// Op marks a diff line as kept, inserted or deleted. Its value is the
// unified diff prefix.
type Op byte

// Diff line operations.
const (
	OpEqual  Op = ' '
	OpInsert Op = '+'
	OpDelete Op = '-'
)

// Line is one line of a hunk, without its terminator.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return string(l.Op) + l.Text
}

// Hunk is a run of changes with surrounding context. Starts are 1-based;
// a side with no lines starts at the line before the change.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// Header returns the hunk's "@@ -a,b +c,d @@" line.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
}

// Diff is the line diff between a file before and after its fix pass.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// NewDiff compares before and after line by line.
func NewDiff(path string, before, after []byte) *Diff {
	d := &Diff{Path: path}
	if bytes.Equal(before, after) {
		return d
	}

	ops := editScript(splitLines(before), splitLines(after))
	for _, op := range ops {
		switch op.Op {
		case OpInsert:
			d.Additions++
		case OpDelete:
			d.Deletions++
		}
	}
	d.Hunks = hunks(ops)
	return d
}

// HasChanges returns true if any line differs.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format with a/ and b/ path prefixes.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", d.Path, d.Path)
	for _, h := range d.Hunks {
		sb.WriteString(h.Header())
		sb.WriteByte('\n')
		for _, l := range h.Lines {
			sb.WriteString(l.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

// editScript turns a into b. The common prefix and suffix are matched
// directly so the quadratic table only covers the changed middle.
func editScript(a, b []string) []Line {
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	ops := make([]Line, 0, len(a)+len(b))
	for _, s := range a[:prefix] {
		ops = append(ops, Line{Op: OpEqual, Text: s})
	}
	ops = append(ops, lcsScript(a[prefix:len(a)-suffix], b[prefix:len(b)-suffix])...)
	for _, s := range a[len(a)-suffix:] {
		ops = append(ops, Line{Op: OpEqual, Text: s})
	}
	return ops
}

// lcsScript walks a longest common subsequence table, emitting deletions
// before insertions within each change.
func lcsScript(a, b []string) []Line {
	n, m := len(a), len(b)

	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var ops []Line
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = append(ops, Line{Op: OpEqual, Text: a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, Line{Op: OpDelete, Text: a[i]})
			i++
		default:
			ops = append(ops, Line{Op: OpInsert, Text: b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, Line{Op: OpDelete, Text: a[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, Line{Op: OpInsert, Text: b[j]})
	}
	return ops
}

// hunks groups changes with contextLines of context on each side. Changes
// separated by at most twice that many unchanged lines share a hunk.
func hunks(ops []Line) []Hunk {
	var windows [][2]int
	for i, op := range ops {
		if op.Op == OpEqual {
			continue
		}
		lo, hi := max(i-contextLines, 0), min(i+contextLines+1, len(ops))
		if n := len(windows); n > 0 && lo <= windows[n-1][1] {
			windows[n-1][1] = hi
			continue
		}
		windows = append(windows, [2]int{lo, hi})
	}

	// oldAt[i] and newAt[i] count the lines of each side before ops[i].
	oldAt := make([]int, len(ops)+1)
	newAt := make([]int, len(ops)+1)
	for i, op := range ops {
		oldAt[i+1], newAt[i+1] = oldAt[i], newAt[i]
		if op.Op != OpInsert {
			oldAt[i+1]++
		}
		if op.Op != OpDelete {
			newAt[i+1]++
		}
	}

	out := make([]Hunk, 0, len(windows))
	for _, w := range windows {
		h := Hunk{
			OldStart: oldAt[w[0]] + 1,
			OldCount: oldAt[w[1]] - oldAt[w[0]],
			NewStart: newAt[w[0]] + 1,
			NewCount: newAt[w[1]] - newAt[w[0]],
			Lines:    slices.Clone(ops[w[0]:w[1]]),
		}
		if h.OldCount == 0 {
			h.OldStart--
		}
		if h.NewCount == 0 {
			h.NewStart--
		}
		out = append(out, h)
	}
	return out
}
