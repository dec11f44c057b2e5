package interp

import (
	"regexp"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// mentionPattern matches an assignee mention token: "@" followed by
// one or more word characters, nothing else.
var mentionPattern = regexp.MustCompile(`^@(\w+)$`)

// ExtractAssignee scans tokens in order for the first mention token
// and returns the mentioned name (without the "@") along with the
// remaining tokens. Any later mention tokens are left in place and end
// up in the task title. The input slice is never modified.
func ExtractAssignee(tokens []string) (fn.Option[string], []string) {
	for i, tok := range tokens {
		m := mentionPattern.FindStringSubmatch(tok)
		if m == nil {
			continue
		}

		rest := make([]string, 0, len(tokens)-1)
		rest = append(rest, tokens[:i]...)
		rest = append(rest, tokens[i+1:]...)

		return fn.Some(m[1]), rest
	}

	return fn.None[string](), tokens
}
