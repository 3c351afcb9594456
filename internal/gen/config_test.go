package gen

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestArityUnmarshalText(t *testing.T) {
	c := qt.New(t)
	var a Arity
	c.Assert(a.UnmarshalText([]byte("64")), qt.IsNil)
	c.Assert(a, qt.Equals, Arity(64))

	err := a.UnmarshalText([]byte("17"))
	c.Assert(err, qt.ErrorIs, ErrUnsupportedArity)
	c.Assert(err, qt.ErrorMatches, `unsupported maximum arity 17 \(must be one of \[16 32 64 128 256\]\)`)
	c.Assert(a, qt.Equals, Arity(64))

	err = a.UnmarshalText([]byte("lots"))
	c.Assert(err, qt.ErrorMatches, `invalid arity "lots": .*`)
}

func TestNumPairs(t *testing.T) {
	c := qt.New(t)
	c.Assert(Arity(16).NumPairs(), qt.Equals, 153)
	for _, a := range Thresholds {
		n := 0
		for range Pairs(int(a)) {
			n++
		}
		c.Check(n, qt.Equals, a.NumPairs(), qt.Commentf("arity %d", a))
	}
}

var validateTests = []struct {
	testName    string
	cfg         func(*Config)
	expectError error
}{{
	testName: "default",
	cfg:      func(*Config) {},
}, {
	testName: "largest",
	cfg: func(c *Config) {
		c.MaxArity = 256
	},
}, {
	testName: "unsupported-arity",
	cfg: func(c *Config) {
		c.MaxArity = 8
	},
	expectError: ErrUnsupportedArity,
}, {
	testName: "zero-arity",
	cfg: func(c *Config) {
		c.MaxArity = 0
	},
	expectError: ErrUnsupportedArity,
}, {
	testName: "no-dir",
	cfg: func(c *Config) {
		c.Dir = ""
	},
	expectError: ErrNoOutputDir,
}}

func TestValidate(t *testing.T) {
	c := qt.New(t)
	for _, test := range validateTests {
		c.Run(test.testName, func(c *qt.C) {
			cfg := DefaultConfig()
			test.cfg(&cfg)
			err := cfg.Validate()
			if test.expectError == nil {
				c.Assert(err, qt.IsNil)
				return
			}
			c.Assert(err, qt.ErrorIs, test.expectError)
			_, err = New(cfg)
			c.Assert(err, qt.ErrorIs, test.expectError)
		})
	}
}
