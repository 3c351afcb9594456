// Package gen generates the per-arity parts of the fnzip module:
// the tuple types with their split and concatenation functions,
// the tuplefunc conversions and the zip constructors.
package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Paths of the generated files, relative to the module root.
const (
	TuplePath     = "tuple/tuple_gen.go"
	TupleTestPath = "tuple/tuple_gen_test.go"
	TuplefuncPath = "tuple/tuplefunc/tuplefunc_gen.go"
	ZipPath       = "zip_gen.go"
	ZipAsyncPath  = "zipasync_gen.go"
)

// File is a generated Go source file.
type File struct {
	// Path is relative to the module root and uses forward slashes.
	Path string

	// Content holds the formatted Go source.
	Content []byte
}

// Generator renders and writes the generated files for a Config.
type Generator struct {
	cfg    Config
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// Logger configures the logger used to report progress.
// By default nothing is logged.
func Logger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New returns a Generator for cfg, which must be valid.
func New(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

type templateData struct {
	Tuples []Tuple
	Splits []Split
	Pairs  []Pair
}

type job struct {
	path    string
	text    string
	enabled bool
}

func (g *Generator) jobs() []job {
	return []job{
		{path: TuplePath, text: tupleTemplate, enabled: true},
		{path: TupleTestPath, text: tupleTestTemplate, enabled: g.cfg.Tests},
		{path: TuplefuncPath, text: tuplefuncTemplate, enabled: true},
		{path: ZipPath, text: zipTemplate, enabled: true},
		{path: ZipAsyncPath, text: zipAsyncTemplate, enabled: g.cfg.Async},
	}
}

func (g *Generator) data() *templateData {
	limit := int(g.cfg.MaxArity)
	var d templateData
	for n := 0; n <= limit; n++ {
		d.Tuples = append(d.Tuples, Tuple{N: n})
	}
	for p := range Pairs(limit) {
		d.Pairs = append(d.Pairs, p)
		d.Splits = append(d.Splits, Split{N: p.N, M: p.M})
	}
	return &d
}

// Render renders all the enabled files. Files are rendered
// concurrently; the result is in a fixed order.
func (g *Generator) Render(ctx context.Context) ([]File, error) {
	data := g.data()
	jobs := slices.DeleteFunc(g.jobs(), func(j job) bool {
		return !j.enabled
	})
	files := make([]File, len(jobs))
	eg, egctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			content, err := render(j.path, j.text, data)
			if err != nil {
				return fmt.Errorf("generating %s: %w", j.path, err)
			}
			files[i] = File{
				Path:    j.path,
				Content: content,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// Write renders all the enabled files and writes them under the
// configured directory. Previously generated files that are now
// disabled are removed.
func (g *Generator) Write(ctx context.Context) error {
	g.logger.Info("generating",
		zap.Int("max_arity", int(g.cfg.MaxArity)),
		zap.Int("pairs", g.cfg.MaxArity.NumPairs()),
		zap.Bool("async", g.cfg.Async),
	)
	files, err := g.Render(ctx)
	if err != nil {
		return err
	}
	total := 0
	for _, f := range files {
		path := g.path(f.Path)
		if err := writeFile(path, f.Content); err != nil {
			return err
		}
		total += len(f.Content)
		g.logger.Info("wrote file",
			zap.String("path", path),
			zap.String("size", humanize.Bytes(uint64(len(f.Content)))),
		)
	}
	for _, j := range g.jobs() {
		if j.enabled {
			continue
		}
		path := g.path(j.path)
		err := os.Remove(path)
		switch {
		case err == nil:
			g.logger.Info("removed disabled file", zap.String("path", path))
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	g.logger.Debug("generation complete", zap.String("total_size", humanize.Bytes(uint64(total))))
	return nil
}

func (g *Generator) path(p string) string {
	return filepath.Join(g.cfg.Dir, filepath.FromSlash(p))
}

var funcs = template.FuncMap{
	"header": func() string {
		return header
	},
	"buildtag": func() string {
		return asyncBuildTag
	},
	"plural": plural,
	"add": func(a, b int) int {
		return a + b
	},
}

func plural(n int, word string) string {
	switch n {
	case 0:
		return "no " + word + "s"
	case 1:
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func render(path, text string, data *templateData) ([]byte, error) {
	tmpl, err := template.New(path).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	out, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting: %w", err)
	}
	return out, nil
}

// writeFile replaces the file at path with data so that a
// failed run never leaves a truncated file behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".fnzipgen-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(f.Name(), 0o666); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
