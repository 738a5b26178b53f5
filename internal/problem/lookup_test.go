package problem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for FileLookup:
// - Identifier is read from the @lc header
// - Header inside a comment (as carried into stubs) is found
// - File name prefix is used when the header is missing, numeric or not
// - Missing file fails with ErrUnknownProblem
// - Dot-file without header fails with ErrUnknownProblem

func TestFileLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "header",
			path:    "/ws/two_sum.mbt",
			content: "/*\n * @lc app=leetcode.cn id=1 lang=javascript\n */\n",
			want:    "1",
		},
		{
			name:    "commented header",
			path:    "/ws/solution.mbt",
			content: "// /*\n//  * @lc app=leetcode.cn id=15 lang=javascript\n",
			want:    "15",
		},
		{
			name:    "file name fallback",
			path:    "/ws/70.climbing-stairs.mbt",
			content: "pub fn climbStairs(n) -> Unit {\n}\n",
			want:    "70",
		},
		{
			name:    "non-numeric file name is used as is",
			path:    "/ws/Solution.mbt",
			content: "pub fn solve() -> Unit {\n}\n",
			want:    "Solution",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0644))

			id, err := NewFileLookup(fs).LookupIdentifier(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestFileLookup_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewFileLookup(afero.NewMemMapFs()).LookupIdentifier("/ws/missing.mbt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProblem)
}

func TestFileLookup_NoIdentifier(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ws/.mbt", []byte("pub fn f() -> Unit {\n}\n"), 0644))

	_, err := NewFileLookup(fs).LookupIdentifier("/ws/.mbt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProblem)
}
