package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/fnzip/internal/gen"
)

// run runs fnzipgen with the given arguments and returns
// what it wrote to stdout and stderr.
func run(args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	err = cmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func resolvedConfig(c *qt.C, args ...string) gen.Config {
	stdout, _, err := run(append([]string{"config"}, args...)...)
	c.Assert(err, qt.IsNil)
	var cfg gen.Config
	c.Assert(yaml.Unmarshal([]byte(stdout), &cfg), qt.IsNil)
	return cfg
}

func TestGenerate(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	_, stderr, err := run("--dir", dir, "--async=false", "--tests=false")
	c.Assert(err, qt.IsNil)
	for _, p := range []string{gen.TuplePath, gen.TuplefuncPath, gen.ZipPath} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p)))
		c.Assert(err, qt.IsNil)
	}
	for _, p := range []string{gen.TupleTestPath, gen.ZipAsyncPath} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p)))
		c.Assert(os.IsNotExist(err), qt.IsTrue)
	}
	c.Assert(stderr, qt.Contains, "wrote file")
	c.Assert(stderr, qt.Not(qt.Contains), "resolved configuration")
}

func TestGenerateVerbose(t *testing.T) {
	c := qt.New(t)
	_, stderr, err := run("--dir", t.TempDir(), "-v")
	c.Assert(err, qt.IsNil)
	c.Assert(stderr, qt.Contains, "resolved configuration")
	c.Assert(stderr, qt.Contains, "generation complete")
}

func TestGenerateUnsupportedArity(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	_, stderr, err := run("--dir", dir, "--max-arity", "20")
	c.Assert(err, qt.ErrorIs, gen.ErrUnsupportedArity)
	c.Assert(stderr, qt.Contains, "unsupported maximum arity 20")
	entries, err := os.ReadDir(dir)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 0)
}

func TestGenerateRejectsArgs(t *testing.T) {
	c := qt.New(t)
	_, _, err := run("extra")
	c.Assert(err, qt.ErrorMatches, `unknown command "extra" for "fnzipgen"`)
}

func TestConfigDefaults(t *testing.T) {
	c := qt.New(t)
	c.Assert(resolvedConfig(c), qt.DeepEquals, gen.DefaultConfig())
}

func TestConfigEnv(t *testing.T) {
	c := qt.New(t)
	t.Setenv("FNZIPGEN_MAX_ARITY", "32")
	t.Setenv("FNZIPGEN_ASYNC", "false")
	cfg := resolvedConfig(c)
	c.Assert(cfg.MaxArity, qt.Equals, gen.Arity(32))
	c.Assert(cfg.Async, qt.IsFalse)
	c.Assert(cfg.Tests, qt.IsTrue)
}

func TestConfigEnvUnsupportedArity(t *testing.T) {
	c := qt.New(t)
	t.Setenv("FNZIPGEN_MAX_ARITY", "17")
	_, _, err := run("config")
	c.Assert(err, qt.ErrorMatches, `(?s).*unsupported maximum arity 17.*`)
}

func TestConfigFile(t *testing.T) {
	c := qt.New(t)
	file := filepath.Join(t.TempDir(), "fnzipgen.yaml")
	err := os.WriteFile(file, []byte("max-arity: 64\nasync: false\ndir: gen\n"), 0o666)
	c.Assert(err, qt.IsNil)

	cfg := resolvedConfig(c, "--config", file)
	c.Assert(cfg, qt.DeepEquals, gen.Config{
		MaxArity: 64,
		Async:    false,
		Tests:    true,
		Dir:      "gen",
	})

	// Flags take precedence over the environment, which takes
	// precedence over the file.
	t.Setenv("FNZIPGEN_MAX_ARITY", "128")
	cfg = resolvedConfig(c, "--config", file)
	c.Assert(cfg.MaxArity, qt.Equals, gen.Arity(128))
	cfg = resolvedConfig(c, "--config", file, "--max-arity", "256")
	c.Assert(cfg.MaxArity, qt.Equals, gen.Arity(256))
}

func TestConfigFileMissing(t *testing.T) {
	c := qt.New(t)
	_, _, err := run("config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestPairs(t *testing.T) {
	c := qt.New(t)
	stdout, _, err := run("pairs")
	c.Assert(err, qt.IsNil)
	for _, want := range []string{"max-arity", "153", "561", "2,145", "8,385", "33,153"} {
		c.Assert(stdout, qt.Contains, want)
	}
}
