package interp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestClassify walks the rule table in priority order.
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   Command
	}{
		{
			name:   "finish with id",
			tokens: []string{"finish", "123"},
			want:   Command{Kind: KindFinishTask, TaskID: "123"},
		},
		{
			name:   "finish keyword is case-insensitive",
			tokens: []string{"FINISH", "9"},
			want:   Command{Kind: KindFinishTask, TaskID: "9"},
		},
		{
			name:   "workspaces",
			tokens: []string{"workspaces"},
			want:   Command{Kind: KindListWorkspaces},
		},
		{
			name:   "workspaces ignores the rest",
			tokens: []string{"workspaces", "eng", "extra"},
			want:   Command{Kind: KindListWorkspaces},
		},
		{
			name:   "comment with id and text",
			tokens: []string{"comment", "7", "looks", "good"},
			want: Command{
				Kind:   KindCommentTask,
				TaskID: "7",
				Text:   "looks good",
			},
		},
		{
			name:   "single token is a query",
			tokens: []string{"eng"},
			want: Command{
				Kind:   KindQuery,
				Tokens: []string{"eng"},
			},
		},
		{
			name:   "scope plus title is a create",
			tokens: []string{"eng", "fix", "bug"},
			want: Command{
				Kind:   KindCreateTask,
				Tokens: []string{"eng", "fix", "bug"},
			},
		},
		{
			name:   "finish with trailing words is a create",
			tokens: []string{"finish", "12", "extra"},
			want: Command{
				Kind:   KindCreateTask,
				Tokens: []string{"finish", "12", "extra"},
			},
		},
		{
			name:   "finish with non-numeric id is a create",
			tokens: []string{"finish", "abc"},
			want: Command{
				Kind:   KindCreateTask,
				Tokens: []string{"finish", "abc"},
			},
		},
		{
			name:   "bare finish is a query",
			tokens: []string{"finish"},
			want: Command{
				Kind:   KindQuery,
				Tokens: []string{"finish"},
			},
		},
		{
			name:   "comment without text is a create",
			tokens: []string{"comment", "7"},
			want: Command{
				Kind:   KindCreateTask,
				Tokens: []string{"comment", "7"},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Classify(tc.tokens)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestClassifyEmpty verifies that an empty invocation is a usage
// error, not a command.
func TestClassifyEmpty(t *testing.T) {
	t.Parallel()

	_, err := Classify(nil)

	var usageErr *UsageError
	require.True(t, errors.As(err, &usageErr))
}
