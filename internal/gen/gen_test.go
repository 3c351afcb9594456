package gen

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRender(t *testing.T) {
	c := qt.New(t)
	g, err := New(DefaultConfig())
	c.Assert(err, qt.IsNil)
	files, err := g.Render(context.Background())
	c.Assert(err, qt.IsNil)

	var paths []string
	decls := make(map[string][]string)
	for _, f := range files {
		paths = append(paths, f.Path)
		c.Assert(strings.HasPrefix(string(f.Content), header), qt.IsTrue, qt.Commentf("%s", f.Path))
		decls[f.Path] = parseFuncs(c, f)
	}
	c.Assert(paths, qt.DeepEquals, []string{
		TuplePath,
		TupleTestPath,
		TuplefuncPath,
		ZipPath,
		ZipAsyncPath,
	})
	c.Assert(decls[TuplePath], qt.Contains, "Mk16")
	c.Assert(decls[TuplePath], qt.Contains, "Split_16_0")
	c.Assert(decls[TuplePath], qt.Contains, "Concat_0_16")
	c.Assert(decls[TuplePath], qt.Not(qt.Contains), "Mk17")
	c.Assert(decls[TupleTestPath], qt.DeepEquals, []string{"TestSplitConcat"})
	c.Assert(decls[TuplefuncPath], qt.HasLen, 2*17)
	// Five constructors per pair.
	c.Assert(decls[ZipPath], qt.HasLen, 5*153)
	c.Assert(decls[ZipPath], qt.Contains, "ZipE_8_8")
	c.Assert(decls[ZipPath], qt.Not(qt.Contains), "Zip_9_8")
	c.Assert(decls[ZipAsyncPath], qt.HasLen, 3*153)
	c.Assert(decls[ZipAsyncPath], qt.Contains, "ZipAsyncOnce_0_16")
}

func TestRenderAsyncBuildTag(t *testing.T) {
	c := qt.New(t)
	g, err := New(DefaultConfig())
	c.Assert(err, qt.IsNil)
	files, err := g.Render(context.Background())
	c.Assert(err, qt.IsNil)
	for _, f := range files {
		hasTag := strings.Contains(string(f.Content), "\n"+asyncBuildTag)
		c.Check(hasTag, qt.Equals, f.Path == ZipAsyncPath, qt.Commentf("%s", f.Path))
	}
}

func TestRenderDisabled(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Async = false
	cfg.Tests = false
	g, err := New(cfg)
	c.Assert(err, qt.IsNil)
	files, err := g.Render(context.Background())
	c.Assert(err, qt.IsNil)
	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	c.Assert(paths, qt.DeepEquals, []string{TuplePath, TuplefuncPath, ZipPath})
}

func TestRenderCancelled(t *testing.T) {
	c := qt.New(t)
	g, err := New(DefaultConfig())
	c.Assert(err, qt.IsNil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Render(ctx)
	c.Assert(err, qt.ErrorIs, context.Canceled)
}

func TestWrite(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := DefaultConfig()
	cfg.Dir = dir
	g, err := New(cfg, Logger(zap.New(core)))
	c.Assert(err, qt.IsNil)
	c.Assert(g.Write(context.Background()), qt.IsNil)

	want, err := g.Render(context.Background())
	c.Assert(err, qt.IsNil)
	for _, f := range want {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Path)))
		c.Assert(err, qt.IsNil)
		c.Assert(string(got), qt.Equals, string(f.Content))
	}
	c.Assert(logs.FilterMessage("wrote file").Len(), qt.Equals, 5)
	entries, err := os.ReadDir(dir)
	c.Assert(err, qt.IsNil)
	for _, e := range entries {
		c.Assert(strings.HasPrefix(e.Name(), ".fnzipgen-"), qt.IsFalse)
	}

	// Disabling async removes the previously generated file.
	cfg.Async = false
	g, err = New(cfg, Logger(zap.New(core)))
	c.Assert(err, qt.IsNil)
	c.Assert(g.Write(context.Background()), qt.IsNil)
	_, err = os.Stat(filepath.Join(dir, ZipAsyncPath))
	c.Assert(os.IsNotExist(err), qt.IsTrue)
	c.Assert(logs.FilterMessage("removed disabled file").Len(), qt.Equals, 1)

	// Writing again when it is already absent is fine.
	c.Assert(g.Write(context.Background()), qt.IsNil)
	c.Assert(logs.FilterMessage("removed disabled file").Len(), qt.Equals, 1)
}

func TestPlural(t *testing.T) {
	c := qt.New(t)
	c.Assert(plural(0, "argument"), qt.Equals, "no arguments")
	c.Assert(plural(1, "argument"), qt.Equals, "1 argument")
	c.Assert(plural(3, "value"), qt.Equals, "3 values")
}

// parseFuncs parses f and returns the names of its top level functions.
func parseFuncs(c *qt.C, f File) []string {
	file, err := parser.ParseFile(token.NewFileSet(), f.Path, f.Content, parser.ParseComments)
	c.Assert(err, qt.IsNil, qt.Commentf("%s", f.Path))
	var names []string
	for _, d := range file.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv != nil {
			continue
		}
		names = append(names, fd.Name.Name)
	}
	return names
}
