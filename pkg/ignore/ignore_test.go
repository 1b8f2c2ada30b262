package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGitIgnore_Matches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "exact name", patterns: []string{"draft.md"}, path: "draft.md", want: true},
		{name: "exact name nested", patterns: []string{"draft.md"}, path: "notes/draft.md", want: true},
		{name: "no match", patterns: []string{"draft.md"}, path: "final.md", want: false},
		{name: "dot is literal", patterns: []string{"a.md"}, path: "abmd", want: false},
		{name: "star", patterns: []string{"wip-*.md"}, path: "wip-core.md", want: true},
		{name: "star matches directory prefix", patterns: []string{"/wip-*"}, path: "wip-a/b.md", want: true},
		{name: "question mark", patterns: []string{"0?.md"}, path: "01.md", want: true},
		{name: "question mark single char", patterns: []string{"0?.md"}, path: "012.md", want: false},
		{name: "anchored", patterns: []string{"/root.md"}, path: "sub/root.md", want: false},
		{name: "anchored root", patterns: []string{"/root.md"}, path: "root.md", want: true},
		{name: "double star prefix", patterns: []string{"**/gen.md"}, path: "a/b/gen.md", want: true},
		{name: "double star middle", patterns: []string{"a/**/gen.md"}, path: "a/x/y/gen.md", want: true},
		{name: "double star middle direct", patterns: []string{"a/**/gen.md"}, path: "a/gen.md", want: true},
		{name: "double star suffix", patterns: []string{"build/**"}, path: "build/x/y.md", want: true},
		{name: "directory only matches dir", patterns: []string{"old/"}, path: "old/", want: true},
		{name: "directory only matches child", patterns: []string{"old/"}, path: "old/a.md", want: true},
		{name: "directory only skips file", patterns: []string{"old/"}, path: "old", want: false},
		{name: "negation", patterns: []string{"*.md", "!keep.md"}, path: "keep.md", want: false},
		{name: "negation last wins", patterns: []string{"!keep.md", "*.md"}, path: "keep.md", want: true},
		{name: "comment and blank", patterns: []string{"# draft.md", "", "   "}, path: "draft.md", want: false},
		{name: "escaped hash", patterns: []string{`\#tag.md`}, path: "#tag.md", want: true},
		{name: "escaped bang", patterns: []string{`\!bang.md`}, path: "!bang.md", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gi := New(nil)
			gi.CompileLines(tt.patterns...)
			assert.Equal(t, tt.want, gi.Matches(tt.path))
		})
	}
}

func TestGitIgnore_MatchesWithPattern(t *testing.T) {
	gi := New(zap.NewNop())
	gi.CompileLines("*.md", "!keep.md")

	ignored, p := gi.MatchesWithPattern("keep.md")
	assert.False(t, ignored)
	require.NotNil(t, p)
	assert.True(t, p.Negate)
	assert.Equal(t, 2, p.LineNo)

	ignored, p = gi.MatchesWithPattern("other.txt")
	assert.False(t, ignored)
	assert.Nil(t, p)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "global")
	second := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(first, []byte("*.draft.md\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("# local\n!keep.draft.md\n"), 0644))

	gi, err := Load(zap.NewNop(), "", first, second, filepath.Join(dir, "missing"))

	require.NoError(t, err)
	assert.Equal(t, 2, gi.Len())
	assert.True(t, gi.Matches("x.draft.md"))
	assert.False(t, gi.Matches("keep.draft.md"))

	_, p := gi.MatchesWithPattern("keep.draft.md")
	require.NotNil(t, p)
	assert.Equal(t, FileName, p.Source)
	assert.Equal(t, 2, p.LineNo)
}

func TestLoad_UnreadableIsError(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(nil, dir)

	assert.Error(t, err)
}
