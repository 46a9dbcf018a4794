package merge

import (
	"cmp"
	"slices"

	"github.com/jusunglee/khmerlex/internal/lexicon"
	"github.com/samber/lo"
)

// Tier thresholds on the 1-100 frequency scale.
const (
	CoreGlossedFrequency = 70
	CoreFrequency        = 90
)

// Tier names used in storage and file names.
const (
	TierCore     = "core"
	TierExtended = "extended"
)

// IsCore reports whether e belongs in the always-loaded tier: glossed and
// common, or very common regardless of gloss. An unknown frequency counts as
// DefaultFrequency.
func IsCore(e lexicon.Entry) bool {
	freq := e.Frequency
	if freq == 0 {
		freq = DefaultFrequency
	}
	return (e.HasGloss() && freq >= CoreGlossedFrequency) || freq >= CoreFrequency
}

// TierOf returns the tier name for e.
func TierOf(e lexicon.Entry) string {
	if IsCore(e) {
		return TierCore
	}
	return TierExtended
}

// Split partitions entries into core and extended tiers, each ordered by
// frequency, most frequent first. Entries with equal frequency keep their
// input order; an unknown frequency sorts last.
func Split(entries []lexicon.Entry) (core, extended []lexicon.Entry) {
	core, extended = lo.FilterReject(entries, func(e lexicon.Entry, _ int) bool {
		return IsCore(e)
	})
	byFrequency := func(a, b lexicon.Entry) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	}
	slices.SortStableFunc(core, byFrequency)
	slices.SortStableFunc(extended, byFrequency)
	return core, extended
}
