package variantset

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/vcf-concordance/internal/maf"
	"github.com/inodb/vcf-concordance/internal/vcf"
)

// Recognized variant-file extensions, longest first so the compressed
// forms are stripped before the plain ones.
var recognizedExts = []string{".vcf.gz", ".maf.gz", ".vcf", ".maf"}

// Recognized reports whether path ends in a recognized variant-file
// extension.
func Recognized(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range recognizedExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Label derives a set label from the input path: the base filename
// with the recognized extension stripped.
func Label(path string) string {
	base := filepath.Base(path)
	lower := strings.ToLower(base)
	for _, ext := range recognizedExts {
		if strings.HasSuffix(lower, ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// Result is the outcome of building one set. A failed build carries
// an empty set and the error that caused it; the run continues with
// whatever other files succeeded.
type Result struct {
	Path string
	Set  *Set
	Err  error
}

// Builder reads variant files into labeled identity sets.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a builder.
func NewBuilder() *Builder {
	return &Builder{logger: zap.NewNop()}
}

// SetLogger sets the logger for per-file read diagnostics.
func (b *Builder) SetLogger(l *zap.Logger) {
	b.logger = l
}

// Build reads one variant file end-to-end into a set. Open and parse
// errors do not propagate: they are logged and the result degrades to
// an empty set, so a single unreadable input thins the diagram instead
// of halting the comparison.
func (b *Builder) Build(path string) Result {
	set, err := b.read(path)
	if err != nil {
		b.logger.Error("error reading variant file",
			zap.String("path", path),
			zap.Error(err))
		return Result{Path: path, Set: New(Label(path)), Err: err}
	}
	return Result{Path: path, Set: set}
}

// BuildAll builds one set per path, sequentially, in the order given.
func (b *Builder) BuildAll(paths []string) []Result {
	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i] = b.Build(path)
	}
	return results
}

func (b *Builder) read(path string) (*Set, error) {
	parser, err := openParser(path)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	set := New(Label(path))
	for {
		v, err := parser.Next()
		if err != nil {
			return nil, err
		}
		if v == nil {
			break
		}
		set.Add(Identify(v))
	}

	return set, nil
}

// openParser chooses the parser by extension.
func openParser(path string) (vcf.VariantParser, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".maf"), strings.HasSuffix(lower, ".maf.gz"):
		return maf.NewParser(path)
	case strings.HasSuffix(lower, ".vcf"), strings.HasSuffix(lower, ".vcf.gz"):
		return vcf.NewParser(path)
	default:
		return nil, fmt.Errorf("unrecognized variant file extension: %s", path)
	}
}
