package selector

import (
	"fmt"
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// maxSuggestDistance bounds how far a typo may be from a known name before no suggestion is made.
const maxSuggestDistance = 3

// suggest returns the known name closest to value, if any is close enough to be a likely typo.
func suggest(value string, known []string) mo.Option[string] {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || len(known) == 0 {
		return mo.None[string]()
	}

	// partial input such as "week" or "boot"
	if ranks := fuzzy.RankFindNormalizedFold(value, known); len(ranks) > 0 {
		sort.Sort(ranks)
		return mo.Some(ranks[0].Target)
	}

	closest := lo.MinBy(known, func(a, b string) bool {
		return levenshtein.Distance(value, a) < levenshtein.Distance(value, b)
	})
	if levenshtein.Distance(value, closest) > maxSuggestDistance {
		return mo.None[string]()
	}

	return mo.Some(closest)
}

// errUnknown builds an ErrInvalidArgument naming the rejected value and, when possible, the closest known one.
func errUnknown(what, value string, known []string) error {
	if s, ok := suggest(value, known).Get(); ok {
		return fmt.Errorf("%w: unknown %s %q, did you mean %q?", ErrInvalidArgument, what, value, s)
	}

	return fmt.Errorf("%w: unknown %s %q, expected one of %s", ErrInvalidArgument, what, value, strings.Join(known, ", "))
}
