// Package dates parses short natural-language date phrases like
// "tomorrow", "friday", or "dec 5" against a caller-supplied reference
// time. Phrases are at most two words; anything longer is not a date
// phrase in this tool's grammar.
package dates

import (
	"strings"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
	naturaldate "github.com/tj/go-naturaldate"
)

// ParsePhrase attempts to interpret phrase as a calendar date relative
// to ref. Bare weekday and month names resolve forward in time, so
// "friday" is the next Friday after ref. If the full phrase does not
// parse but its final word does (e.g. "report tomorrow"), the final
// word alone decides the date; the caller is responsible for deciding
// how many words the date actually consumed.
func ParsePhrase(phrase string, ref time.Time) fn.Option[time.Time] {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return fn.None[time.Time]()
	}

	if t, ok := parse(phrase, ref); ok {
		return fn.Some(t)
	}

	// Tolerate an unrecognized leading word, the way "buy milk
	// friday" still ends in a date.
	words := strings.Fields(phrase)
	if len(words) == 2 {
		if t, ok := parse(words[1], ref); ok {
			return fn.Some(t)
		}
	}

	return fn.None[time.Time]()
}

// ParseWord attempts to interpret a single word as a calendar date
// relative to ref.
func ParseWord(word string, ref time.Time) fn.Option[time.Time] {
	word = strings.TrimSpace(word)
	if word == "" || strings.ContainsAny(word, " \t") {
		return fn.None[time.Time]()
	}
	if t, ok := parse(word, ref); ok {
		return fn.Some(t)
	}
	return fn.None[time.Time]()
}

// Normalize renders a parsed date as YYYY-MM-DD, discarding any
// time-of-day the parser attached.
func Normalize(t time.Time) string {
	return t.Format("2006-01-02")
}

func parse(s string, ref time.Time) (time.Time, bool) {
	t, err := naturaldate.Parse(
		s, ref, naturaldate.WithDirection(naturaldate.Future),
	)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
