package gen

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Arity is the maximum combined number of arguments that the
// generated zip functions support. Only the values in Thresholds
// are accepted.
type Arity int

// Thresholds holds the supported values of Arity.
var Thresholds = []Arity{16, 32, 64, 128, 256}

// DefaultArity is the Arity used when none is configured.
const DefaultArity Arity = 16

var (
	ErrUnsupportedArity = errors.New("unsupported maximum arity")
	ErrNoOutputDir      = errors.New("no output directory")
)

// UnmarshalText implements encoding.TextUnmarshaler so that
// arities can be read from flags, environment variables and
// configuration files alike.
func (a *Arity) UnmarshalText(text []byte) error {
	n, err := strconv.Atoi(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid arity %q: %w", text, err)
	}
	if err := Arity(n).Check(); err != nil {
		return err
	}
	*a = Arity(n)
	return nil
}

// Check returns an error wrapping ErrUnsupportedArity if a is
// not one of Thresholds.
func (a Arity) Check() error {
	if !slices.Contains(Thresholds, a) {
		return fmt.Errorf("%w %d (must be one of %v)", ErrUnsupportedArity, int(a), Thresholds)
	}
	return nil
}

// NumPairs returns the number of arity pairs (n, m) with n+m <= a.
func (a Arity) NumPairs() int {
	n := int(a)
	return (n + 1) * (n + 2) / 2
}

// Config holds the parameters of a generation run.
type Config struct {
	// MaxArity bounds the combined arity of the generated zip
	// functions and the length of the largest tuple type.
	MaxArity Arity `mapstructure:"max-arity" yaml:"max-arity"`

	// Async enables generation of the asynchronous zip constructors.
	Async bool `mapstructure:"async" yaml:"async"`

	// Tests enables generation of the tuple round-trip tests.
	Tests bool `mapstructure:"tests" yaml:"tests"`

	// Dir is the root directory of the fnzip module.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DefaultConfig returns the configuration used by go generate.
func DefaultConfig() Config {
	return Config{
		MaxArity: DefaultArity,
		Async:    true,
		Tests:    true,
		Dir:      ".",
	}
}

// Validate reports whether c can be used to generate code.
func (c Config) Validate() error {
	if err := c.MaxArity.Check(); err != nil {
		return err
	}
	if c.Dir == "" {
		return ErrNoOutputDir
	}
	return nil
}
