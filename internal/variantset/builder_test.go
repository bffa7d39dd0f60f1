package variantset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()

	r := b.Build(filepath.Join("testdata", "a.vcf"))
	require.NoError(t, r.Err)
	assert.Equal(t, "a", r.Set.Label)
	assert.Equal(t, 3, r.Set.Len())
	assert.True(t, r.Set.Contains(Identity{Chrom: "1", Pos: 100, Ref: "A", Alt: "T"}))
}

func TestBuilder_EmptyFile(t *testing.T) {
	b := NewBuilder()

	r := b.Build(filepath.Join("testdata", "empty.vcf"))
	require.NoError(t, r.Err, "a well-formed but empty file is not an error")
	assert.Equal(t, 0, r.Set.Len())
}

func TestBuilder_DuplicatesAndNoAlt(t *testing.T) {
	b := NewBuilder()

	// dupes.vcf has two records at 1:100 A>T differing only in quality
	// and filter, and two no-ALT records at 1:500.
	r := b.Build(filepath.Join("testdata", "dupes.vcf"))
	require.NoError(t, r.Err)
	assert.Equal(t, 2, r.Set.Len(),
		"set size must reflect unique (chrom,pos,ref,alt) combinations only")
	assert.True(t, r.Set.Contains(Identity{Chrom: "1", Pos: 500, Ref: "G", Alt: ""}))
}

func TestBuilder_MissingFile(t *testing.T) {
	b := NewBuilder()

	r := b.Build(filepath.Join("testdata", "does_not_exist.vcf"))
	assert.Error(t, r.Err)
	require.NotNil(t, r.Set, "a failed build still yields a set")
	assert.Equal(t, 0, r.Set.Len(), "unreadable input degrades to an empty set")
}

func TestBuilder_ParseErrorMidFile(t *testing.T) {
	b := NewBuilder()

	r := b.Build(filepath.Join("testdata", "bad_position.vcf"))
	assert.Error(t, r.Err)
	assert.Equal(t, 0, r.Set.Len(), "a parse failure discards the partial set")
}

func TestBuilder_BuildAll(t *testing.T) {
	b := NewBuilder()

	results := b.BuildAll([]string{
		filepath.Join("testdata", "a.vcf"),
		filepath.Join("testdata", "does_not_exist.vcf"),
		filepath.Join("testdata", "b.vcf"),
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err, "a failed file must not halt the remaining builds")
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 3, results[2].Set.Len())
}

func TestRecognized(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"sample.vcf", true},
		{"sample.vcf.gz", true},
		{"SAMPLE.VCF", true},
		{"mutations.maf", true},
		{"mutations.maf.gz", true},
		{"--output", false},
		{"out.png", false},
		{"notes.txt", false},
		{"vcf", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Recognized(tt.path), tt.path)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"sample.vcf", "sample"},
		{"/data/runs/tumor.vcf.gz", "tumor"},
		{"mutations.maf", "mutations"},
		{"a.b.vcf", "a.b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.path), tt.path)
	}
}
