package interp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestExtractAssignee verifies mention extraction over fixed streams.
func TestExtractAssignee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tokens   []string
		want     string
		none     bool
		wantRest []string
	}{
		{
			name:     "mention in the middle",
			tokens:   []string{"eng", "fix", "@alice", "login"},
			want:     "alice",
			wantRest: []string{"eng", "fix", "login"},
		},
		{
			name:     "mention first",
			tokens:   []string{"@bob", "eng", "fix"},
			want:     "bob",
			wantRest: []string{"eng", "fix"},
		},
		{
			name:     "no mention",
			tokens:   []string{"eng", "fix", "login"},
			none:     true,
			wantRest: []string{"eng", "fix", "login"},
		},
		{
			name:     "first of several mentions wins",
			tokens:   []string{"eng", "@alice", "ping", "@bob"},
			want:     "alice",
			wantRest: []string{"eng", "ping", "@bob"},
		},
		{
			name:     "bare at sign is not a mention",
			tokens:   []string{"eng", "@", "fix"},
			none:     true,
			wantRest: []string{"eng", "@", "fix"},
		},
		{
			name:     "embedded at sign is not a mention",
			tokens:   []string{"eng", "mail@example.com"},
			none:     true,
			wantRest: []string{"eng", "mail@example.com"},
		},
		{
			name:     "empty stream",
			tokens:   nil,
			none:     true,
			wantRest: nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, rest := ExtractAssignee(tc.tokens)
			if tc.none {
				require.True(t, got.IsNone())
			} else {
				require.Equal(t, tc.want, got.UnwrapOr(""))
			}
			require.Equal(t, tc.wantRest, rest)
		})
	}
}

// TestExtractAssigneeDoesNotMutate verifies the input slice survives
// extraction unchanged.
func TestExtractAssigneeDoesNotMutate(t *testing.T) {
	t.Parallel()

	tokens := []string{"eng", "@alice", "fix"}
	_, _ = ExtractAssignee(tokens)

	require.Equal(t, []string{"eng", "@alice", "fix"}, tokens)
}

// TestExtractAssigneeProperties checks the extraction invariants over
// generated streams: a single mention shrinks the stream by exactly
// one while preserving relative order, and mention-free streams pass
// through untouched.
func TestExtractAssigneeProperties(t *testing.T) {
	t.Parallel()

	wordGen := rapid.StringMatching(`[a-z]{1,8}`)

	t.Run("single mention", rapid.MakeCheck(func(t *rapid.T) {
		words := rapid.SliceOfN(wordGen, 0, 8).Draw(t, "words")
		name := wordGen.Draw(t, "name")
		pos := rapid.IntRange(0, len(words)).Draw(t, "pos")

		tokens := make([]string, 0, len(words)+1)
		tokens = append(tokens, words[:pos]...)
		tokens = append(tokens, "@"+name)
		tokens = append(tokens, words[pos:]...)

		got, rest := ExtractAssignee(tokens)

		if got.UnwrapOr("") != name {
			t.Fatalf("got %q, want %q", got.UnwrapOr(""), name)
		}
		if len(rest) != len(tokens)-1 {
			t.Fatalf("rest has %d tokens, want %d",
				len(rest), len(tokens)-1)
		}
		for i, w := range words {
			if rest[i] != w {
				t.Fatalf("order broken at %d: %q != %q",
					i, rest[i], w)
			}
		}
	}))

	t.Run("no mention is identity", rapid.MakeCheck(func(t *rapid.T) {
		tokens := rapid.SliceOfN(wordGen, 0, 8).Draw(t, "tokens")

		got, rest := ExtractAssignee(tokens)

		if got.IsSome() {
			t.Fatalf("unexpected assignee %q", got.UnwrapOr(""))
		}
		if len(rest) != len(tokens) {
			t.Fatalf("stream length changed: %d != %d",
				len(rest), len(tokens))
		}
		for i := range tokens {
			if rest[i] != tokens[i] {
				t.Fatalf("token %d changed", i)
			}
		}
	}))
}
