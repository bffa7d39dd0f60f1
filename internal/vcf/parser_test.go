package vcf

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParser_SimpleVCF(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "simple.vcf"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	v, err := parser.Next()
	if err != nil {
		t.Fatalf("Failed to read variant: %v", err)
	}
	if v == nil {
		t.Fatal("Expected a variant, got nil")
	}

	if v.Chrom != "1" {
		t.Errorf("Expected chrom 1, got %s", v.Chrom)
	}
	if v.Pos != 100 {
		t.Errorf("Expected pos 100, got %d", v.Pos)
	}
	if v.ID != "rs1" {
		t.Errorf("Expected ID rs1, got %s", v.ID)
	}
	if v.Ref != "A" {
		t.Errorf("Expected ref A, got %s", v.Ref)
	}
	if len(v.Alts) != 1 || v.Alts[0] != "T" {
		t.Errorf("Expected alts [T], got %v", v.Alts)
	}
	if v.Qual != 50 {
		t.Errorf("Expected qual 50, got %f", v.Qual)
	}
	if v.Filter != "PASS" {
		t.Errorf("Expected filter PASS, got %s", v.Filter)
	}
}

func TestParser_MultiAllelic(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "simple.vcf"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	// Skip the first record
	if _, err := parser.Next(); err != nil {
		t.Fatalf("Failed to read variant: %v", err)
	}

	v, err := parser.Next()
	if err != nil {
		t.Fatalf("Failed to read variant: %v", err)
	}
	if v == nil {
		t.Fatal("Expected a variant, got nil")
	}

	if len(v.Alts) != 2 || v.Alts[0] != "C" || v.Alts[1] != "A" {
		t.Errorf("Expected alts [C A], got %v", v.Alts)
	}
	if v.FirstAlt() != "C" {
		t.Errorf("Expected first alt C, got %s", v.FirstAlt())
	}
	// Missing QUAL ('.') maps to 0
	if v.Qual != 0 {
		t.Errorf("Expected qual 0 for '.', got %f", v.Qual)
	}
}

func TestParser_NoAltRecord(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "simple.vcf"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	// Third record has ALT "."
	var v *Variant
	for i := 0; i < 3; i++ {
		v, err = parser.Next()
		if err != nil {
			t.Fatalf("Failed to read variant: %v", err)
		}
	}
	if v == nil {
		t.Fatal("Expected a variant, got nil")
	}

	if len(v.Alts) != 0 {
		t.Errorf("Expected no alts for ALT '.', got %v", v.Alts)
	}
	if v.FirstAlt() != "" {
		t.Errorf("Expected empty first alt, got %q", v.FirstAlt())
	}

	// No more variants
	v, err = parser.Next()
	if err != nil {
		t.Fatalf("Error checking for more variants: %v", err)
	}
	if v != nil {
		t.Error("Expected no more variants")
	}
}

func TestParser_Gzipped(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "simple.vcf.gz"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	count := 0
	for {
		v, err := parser.Next()
		if err != nil {
			t.Fatalf("Error reading variant: %v", err)
		}
		if v == nil {
			break
		}
		count++
	}

	if count != 3 {
		t.Errorf("Expected 3 variants from gzipped file, got %d", count)
	}
}

func TestParser_EmptyFile(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "empty.vcf"))
	if err != nil {
		t.Fatalf("Failed to create parser for header-only file: %v", err)
	}
	defer parser.Close()

	v, err := parser.Next()
	if err != nil {
		t.Fatalf("Expected no error for empty file, got: %v", err)
	}
	if v != nil {
		t.Errorf("Expected no variants, got %+v", v)
	}
}

func TestParser_NoTrailingNewline(t *testing.T) {
	parser, err := NewParser(filepath.Join("testdata", "no_trailing_newline.vcf"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	defer parser.Close()

	count := 0
	var last *Variant
	for {
		v, err := parser.Next()
		if err != nil {
			t.Fatalf("Error reading variant: %v", err)
		}
		if v == nil {
			break
		}
		last = v
		count++
	}

	if count != 2 {
		t.Fatalf("Expected 2 variants, got %d (last record without trailing newline dropped)", count)
	}
	if last.Pos != 200 || last.Ref != "G" || last.FirstAlt() != "C" {
		t.Errorf("Unexpected final variant: %+v", last)
	}
}

func TestParser_UnterminatedHeaderLine(t *testing.T) {
	// The #CHROM line is the last line of the file and has no newline.
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO"

	parser, err := NewParserFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected header-only file to parse, got: %v", err)
	}

	v, err := parser.Next()
	if err != nil {
		t.Fatalf("Expected no error after header, got: %v", err)
	}
	if v != nil {
		t.Errorf("Expected no variants, got %+v", v)
	}
}

func TestParser_MissingHeader(t *testing.T) {
	_, err := NewParser(filepath.Join("testdata", "no_header.vcf"))
	if err == nil {
		t.Fatal("Expected error for file without #CHROM header")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("Expected *ParseError, got %T: %v", err, err)
	}
}

func TestParser_FromReader(t *testing.T) {
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"X\t1000\t.\tAT\tA\t30\tPASS\t.\n"

	parser, err := NewParserFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	v, err := parser.Next()
	if err != nil {
		t.Fatalf("Failed to read variant: %v", err)
	}
	if v == nil {
		t.Fatal("Expected a variant, got nil")
	}
	if v.Chrom != "X" || v.Pos != 1000 || v.Ref != "AT" || v.FirstAlt() != "A" {
		t.Errorf("Unexpected variant: %+v", v)
	}

	if len(parser.Header()) != 2 {
		t.Errorf("Expected 2 header lines, got %d", len(parser.Header()))
	}
}

func TestParser_TooFewColumns(t *testing.T) {
	input := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"1\t100\t.\tA\n"

	parser, err := NewParserFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	_, err = parser.Next()
	if err == nil {
		t.Fatal("Expected error for truncated data line")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("Expected *ParseError, got %T: %v", err, err)
	}
}
