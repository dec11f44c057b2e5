package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExecuteExitCodes verifies the error-to-exit-code mapping. These
// invocations all fail before any network call: usage errors during
// classification or flag parsing exit 2, missing credentials exit 1.
// Not parallel: Execute works on package-level cobra state.
func TestExecuteExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ASANA_API_KEY", "")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{
			name: "unknown flag is a usage error",
			args: []string{"--bogus"},
			want: 2,
		},
		{
			name: "no arguments is a usage error",
			args: []string{},
			want: 2,
		},
		{
			name: "missing credentials",
			args: []string{"eng"},
			want: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rootCmd.SetArgs(tc.args)
			require.Equal(t, tc.want, Execute())
		})
	}
}
