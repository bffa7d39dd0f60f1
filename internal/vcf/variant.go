// Package vcf provides VCF file parsing functionality.
package vcf

// Variant represents a single genomic variant record.
type Variant struct {
	Chrom  string   // Chromosome name (e.g., "12", "chr12")
	Pos    int64    // 1-based genomic position
	ID     string   // Variant identifier (e.g., rs ID), "." if absent
	Ref    string   // Reference allele
	Alts   []string // Alternate alleles; nil when ALT is "." (reference-only call)
	Qual   float64  // Quality score, 0 when missing
	Filter string   // Filter status (PASS or filter name)
}

// FirstAlt returns the first alternate allele, or the empty string
// when the record carries no alternates.
func (v *Variant) FirstAlt() string {
	if len(v.Alts) == 0 {
		return ""
	}
	return v.Alts[0]
}
