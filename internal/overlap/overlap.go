// Package overlap computes multi-set overlap cardinalities between
// variant sets and selects the diagram family that fits the number of
// inputs.
package overlap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/vcf-concordance/internal/variantset"
)

// ErrTooFewSets is returned by Select when fewer than two sets are
// supplied; there is nothing to compare.
var ErrTooFewSets = errors.New("at least 2 variant sets are required for comparison")

// maxVennSets is the largest set count a Venn diagram can show.
// Above it the multi-set overlap plot is used instead. Fixed, not
// configurable.
const maxVennSets = 3

// maxSets is the widest membership a Mask can represent; more inputs
// would silently merge regions.
const maxSets = 64

// Mask is a membership bitmask over the input sets: bit i is set iff
// the identity is present in set i and, for an exclusive region,
// absent from every set whose bit is clear.
type Mask uint64

// Combination is one exclusive membership region and its cardinality.
type Combination struct {
	Mask    Mask
	Members []string // labels of the sets in the region, input order
	Count   int
}

// Label formats the combination for axis ticks and summaries,
// e.g. "tumor & normal".
func (c Combination) Label() string {
	return strings.Join(c.Members, " & ")
}

// Diagram is the closed result of Select: either a *Pairwise (2 or 3
// sets, Venn diagram) or a *MultiSet (4 or more sets, combination
// frequency plot).
type Diagram interface {
	// Sets returns the input sets in the order supplied.
	Sets() []*variantset.Set

	// Combinations returns every non-empty exclusive region with its
	// cardinality, sorted by descending count (ties by ascending mask).
	Combinations() []Combination

	sealed()
}

// Pairwise is the 2- or 3-set Venn diagram result.
type Pairwise struct {
	sets   []*variantset.Set
	counts map[Mask]int
}

// MultiSet is the >=4-set combination-frequency result.
type MultiSet struct {
	sets   []*variantset.Set
	counts map[Mask]int
}

func (p *Pairwise) sealed() {}
func (m *MultiSet) sealed() {}

// Sets returns the input sets in the order supplied.
func (p *Pairwise) Sets() []*variantset.Set { return p.sets }

// Sets returns the input sets in the order supplied.
func (m *MultiSet) Sets() []*variantset.Set { return m.sets }

// RegionCount returns the number of identities present in exactly the
// sets selected by mask (and absent from all others). Zero for empty
// regions.
func (p *Pairwise) RegionCount(mask Mask) int { return p.counts[mask] }

// Combinations returns the non-empty exclusive regions sorted by
// descending cardinality.
func (p *Pairwise) Combinations() []Combination { return combinations(p.sets, p.counts) }

// Combinations returns the non-empty exclusive regions sorted by
// descending cardinality.
func (m *MultiSet) Combinations() []Combination { return combinations(m.sets, m.counts) }

// Select chooses the diagram family for the given sets. Venn diagrams
// stop being readable above three sets, so four or more inputs route
// to the multi-set overlap plot; the switch is logged, not an error.
func Select(sets []*variantset.Set, logger *zap.Logger) (Diagram, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch {
	case len(sets) < 2:
		return nil, ErrTooFewSets
	case len(sets) > maxSets:
		return nil, fmt.Errorf("at most %d variant sets are supported, got %d", maxSets, len(sets))
	case len(sets) <= maxVennSets:
		return &Pairwise{sets: sets, counts: regionCounts(sets)}, nil
	default:
		logger.Info("venn diagrams are not recommended for more than 3 sets, using multi-set overlap plot instead",
			zap.Int("sets", len(sets)))
		return &MultiSet{sets: sets, counts: regionCounts(sets)}, nil
	}
}

// regionCounts computes the exclusive-region cardinalities: for every
// identity in the union, its membership mask is computed and counted.
// The counts therefore sum to the size of the union.
func regionCounts(sets []*variantset.Set) map[Mask]int {
	counts := make(map[Mask]int)

	seen := make(map[variantset.Identity]struct{})
	for _, s := range sets {
		for _, id := range s.Identities() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			var mask Mask
			for i, t := range sets {
				if t.Contains(id) {
					mask |= 1 << i
				}
			}
			counts[mask]++
		}
	}

	return counts
}

// combinations materializes the non-empty regions, sorted by
// descending count with ties broken by ascending mask for
// deterministic output.
func combinations(sets []*variantset.Set, counts map[Mask]int) []Combination {
	combos := make([]Combination, 0, len(counts))
	for mask, count := range counts {
		var members []string
		for i, s := range sets {
			if mask&(1<<i) != 0 {
				members = append(members, s.Label)
			}
		}
		combos = append(combos, Combination{Mask: mask, Members: members, Count: count})
	}

	sort.Slice(combos, func(i, j int) bool {
		if combos[i].Count != combos[j].Count {
			return combos[i].Count > combos[j].Count
		}
		return combos[i].Mask < combos[j].Mask
	})

	return combos
}
