// Command fnzipgen generates the parts of the fnzip module that
// depend on the maximum supported arity: the tuple types, the
// tuplefunc conversions and the zip constructors.
//
// It is usually run through go generate from the module root:
//
//	fnzipgen --max-arity 16
//
// Settings are taken from flags, then FNZIPGEN_* environment
// variables, then an optional .fnzipgen.yaml file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/fnzip/internal/gen"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var (
		configFile string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:          "fnzipgen",
		Short:        "Generate the per-arity zip functions of fnzip",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, configFile)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), verbose)
			defer logger.Sync()
			logger.Debug("resolved configuration", zap.String("config_file", v.ConfigFileUsed()))
			g, err := gen.New(cfg, gen.Logger(logger))
			if err != nil {
				return err
			}
			return g.Write(cmd.Context())
		},
	}
	def := gen.DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.Int("max-arity", int(def.MaxArity), fmt.Sprintf("maximum combined arity, one of %v", gen.Thresholds))
	flags.Bool("async", def.Async, "generate the asynchronous zip functions")
	flags.Bool("tests", def.Tests, "generate the tuple round-trip tests")
	flags.String("dir", def.Dir, "root directory of the fnzip module")
	flags.StringVar(&configFile, "config", "", "configuration file (default .fnzipgen.yaml if present)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	for _, name := range []string{"max-arity", "async", "tests", "dir"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(
		newConfigCmd(v, &configFile),
		newPairsCmd(),
	)
	return cmd
}

func newConfigCmd(v *viper.Viper, configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, *configFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "Print the number of generated zip functions for each supported arity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(w, "max-arity\tpairs\t\n")
			for _, a := range gen.Thresholds {
				fmt.Fprintf(w, "%d\t%s\t\n", a, humanize.Comma(int64(a.NumPairs())))
			}
			return w.Flush()
		},
	}
}

// newLogger returns a console logger writing to w, coloured
// when w is a terminal.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
