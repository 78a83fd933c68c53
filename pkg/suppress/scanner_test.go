package suppress_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintcore/pkg/document"
	"github.com/yaklabco/lintcore/pkg/suppress"
)

func normalizeIDs(key string) string {
	if key == "LC001" {
		return "no-trailing-spaces"
	}
	return key
}

func scan(t *testing.T, opts suppress.ScanOptions, lines ...string) (*suppress.RangeIndex, []suppress.Directive) {
	t.Helper()
	doc := document.New("doc.md", []byte(strings.Join(lines, "\n")+"\n"))
	return suppress.NewScanner(opts).Scan(doc)
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	index, directives := scan(t, suppress.ScanOptions{Normalize: normalizeIDs},
		"# Title",
		"",
		"<!-- lintcore-disable -->",
		"",
		"text",
		"",
		"<!-- lintcore-enable -->",
		"",
		"line <!-- lintcore-disable-line no-hard-tabs -->",
		"",
		"<!-- lintcore-disable-next-line LC001, foo -->",
		"target",
		"",
		"```",
		"<!-- lintcore-disable -->",
		"```",
	)

	wantDirectives := []suppress.Directive{
		{ID: 1, Kind: suppress.KindDisable, Line: 3, Column: 1},
		{ID: 2, Kind: suppress.KindEnable, Line: 7, Column: 1},
		{ID: 3, Kind: suppress.KindDisableLine, Line: 9, Column: 6, Rules: []string{"no-hard-tabs"}},
		{ID: 4, Kind: suppress.KindDisableNextLine, Line: 11, Column: 1, Rules: []string{"no-trailing-spaces", "foo"}},
	}
	if diff := cmp.Diff(wantDirectives, directives); diff != "" {
		t.Errorf("directives mismatch (-want +got):\n%s", diff)
	}

	wantRanges := map[string][]suppress.DisabledRange{
		suppress.Wildcard: {
			{Start: 3, End: suppress.Through(7), DirectiveID: 1},
		},
		"no-hard-tabs": {
			{Start: 9, End: suppress.Through(9), Rules: []string{"no-hard-tabs"}, DirectiveID: 3},
		},
		"no-trailing-spaces": {
			{Start: 12, End: suppress.Through(12), Rules: []string{"no-trailing-spaces"}, DirectiveID: 4},
		},
		"foo": {
			{Start: 12, End: suppress.Through(12), Rules: []string{"foo"}, DirectiveID: 4},
		},
	}
	if diff := cmp.Diff(wantRanges, index.Snapshot()); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_UnclosedDisableRunsToEnd(t *testing.T) {
	t.Parallel()

	index, _ := scan(t, suppress.ScanOptions{},
		"a",
		"",
		"<!-- lintcore-disable foo -->",
		"",
		"b",
	)

	ranges := index.Ranges("foo")
	require.Len(t, ranges, 1)
	assert.Equal(t, 3, ranges[0].Start)
	assert.Nil(t, ranges[0].End)
	assert.True(t, index.Contains("foo", 1000))
	assert.False(t, index.Contains("bar", 4))
}

func TestScanner_RuleEnableKeepsWildcardOpen(t *testing.T) {
	t.Parallel()

	index, _ := scan(t, suppress.ScanOptions{},
		"<!-- lintcore-disable -->",
		"",
		"<!-- lintcore-disable foo -->",
		"",
		"<!-- lintcore-enable foo -->",
		"",
		"<!-- lintcore-enable -->",
	)

	if diff := cmp.Diff(map[string][]suppress.DisabledRange{
		suppress.Wildcard: {{Start: 1, End: suppress.Through(7), DirectiveID: 1}},
		"foo":             {{Start: 3, End: suppress.Through(5), Rules: []string{"foo"}, DirectiveID: 2}},
	}, index.Snapshot()); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestScanner_CustomPrefix(t *testing.T) {
	t.Parallel()

	index, directives := scan(t, suppress.ScanOptions{Prefix: "docs"},
		"<!-- lintcore-disable -->",
		"",
		"<!-- docs-disable-next-line foo -->",
		"x",
	)

	require.Len(t, directives, 1)
	assert.Equal(t, suppress.KindDisableNextLine, directives[0].Kind)
	assert.True(t, index.Contains("foo", 4))
	assert.False(t, index.Contains("foo", 1))
}

func TestScanner_NoDirectives(t *testing.T) {
	t.Parallel()

	index, directives := scan(t, suppress.ScanOptions{GFM: true}, "# Title", "", "<!-- plain comment -->")

	assert.Empty(t, directives)
	assert.Zero(t, index.Len())
}

func TestDirectiveKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "disable", suppress.KindDisable.String())
	assert.Equal(t, "enable", suppress.KindEnable.String())
	assert.Equal(t, "disable-line", suppress.KindDisableLine.String())
	assert.Equal(t, "disable-next-line", suppress.KindDisableNextLine.String())
}
