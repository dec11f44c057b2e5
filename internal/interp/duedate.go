package interp

import (
	"strings"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/asnlabs/asn/internal/dates"
)

// dateStopWords introduce a trailing date phrase without being part of
// the date itself, e.g. "pay rent due friday".
var dateStopWords = map[string]struct{}{
	"due": {},
	"on":  {},
	"for": {},
}

// ExtractDueDate inspects the trailing one or two tokens for a date
// phrase. On a match it returns the date normalized to YYYY-MM-DD and
// the tokens with the consumed ones removed:
//
//   - the last token is always consumed,
//   - the second-to-last token is also consumed when it parses as a
//     date on its own ("dec" in "dec 5") or is a stop word ("due" in
//     "due friday").
//
// When the tail does not parse as a date the input tokens are returned
// untouched. The input slice is never modified; ref anchors relative
// phrases like "tomorrow".
func ExtractDueDate(
	tokens []string, ref time.Time,
) (fn.Option[string], []string) {

	if len(tokens) == 0 {
		return fn.None[string](), tokens
	}

	tail := tokens
	if len(tail) > 2 {
		tail = tail[len(tail)-2:]
	}

	parsed := dates.ParsePhrase(strings.Join(tail, " "), ref)
	if parsed.IsNone() {
		return fn.None[string](), tokens
	}

	drop := 1
	if len(tokens) >= 2 {
		penult := tokens[len(tokens)-2]
		_, stop := dateStopWords[strings.ToLower(penult)]
		if stop || dates.ParseWord(penult, ref).IsSome() {
			drop = 2
		}
	}

	rest := make([]string, len(tokens)-drop)
	copy(rest, tokens[:len(tokens)-drop])

	due := fn.None[string]()
	parsed.WhenSome(func(t time.Time) {
		due = fn.Some(dates.Normalize(t))
	})

	return due, rest
}
