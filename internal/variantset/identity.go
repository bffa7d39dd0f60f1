// Package variantset builds per-file sets of canonical variant
// identities for concordance comparison.
package variantset

import (
	"fmt"

	"github.com/inodb/vcf-concordance/internal/vcf"
)

// Identity is the canonical identifying tuple of a variant. Two
// records are the same variant iff all four fields are equal; quality,
// filter, genotype, ID and alternates beyond the first are ignored.
type Identity struct {
	Chrom string
	Pos   int64
	Ref   string
	Alt   string
}

// Identify normalizes a parsed variant record into its Identity.
// A record with no alternate alleles gets an empty Alt, so all no-ALT
// records at a given position collapse to a single identity. Only the
// first alternate allele is considered: one input record yields at
// most one set member regardless of how many alternates it carries.
func Identify(v *vcf.Variant) Identity {
	return Identity{
		Chrom: v.Chrom,
		Pos:   v.Pos,
		Ref:   v.Ref,
		Alt:   v.FirstAlt(),
	}
}

// String formats the identity as chrom:pos ref>alt.
func (id Identity) String() string {
	alt := id.Alt
	if alt == "" {
		alt = "."
	}
	return fmt.Sprintf("%s:%d %s>%s", id.Chrom, id.Pos, id.Ref, alt)
}
