// Command expoweight inspects exposure weight functions: dump samples a
// curve over a uniform grid for plotting, check validates that every sample
// stays inside [0,1). Any configuration mistake — unknown name, missing
// symbol, broken user script — is reported and the process exits non-zero:
// an unusable weight function must never reach a blending run.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/expoweight/curve"
	"github.com/katalvlaran/expoweight/diag"
	"github.com/katalvlaran/expoweight/dynload"
	"github.com/katalvlaran/expoweight/weightfn"
)

var (
	// Global flags
	configPath string
	fnName     string
	fnArgs     []string
	yOptimum   float64
	width      float64
	samples    int
	selfCheck  bool
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "expoweight",
	Short: "Inspect and validate exposure weight functions",
	Long: `expoweight resolves an exposure weight function by name — one of the
built-ins (gauss, lorentz, halfsine, fullsine, bisquare, including their
long spellings) or a user-supplied curve loaded from a Go script — and runs
diagnostics on it.

Dynamic curves: pass the script path as the function name, the symbol to
resolve as the first --weight-function-arg, and any further arguments after
it; they are forwarded to the curve's initializer uninterpreted.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print 'index x weight' samples of the configured curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, c, err := configureCurve(cmd)
		if err != nil {
			return err
		}
		defer slot.Close()

		return diag.Dump(os.Stdout, c, samples)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate that every sampled weight lies in [0,1)",
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, c, err := configureCurve(cmd)
		if err != nil {
			return err
		}
		defer slot.Close()

		ok, faults, err := diag.Check(c, samples)
		if err != nil {
			return err
		}
		if !ok {
			logger.Error("weight function out of range",
				zap.String("function", fnName),
				zap.Int("faults", faults),
				zap.Int("samples", samples))

			return fmt.Errorf("%d of %d samples outside [0,1)", faults, samples)
		}

		logger.Info("weight function in range",
			zap.String("function", fnName),
			zap.Int("samples", samples))

		return nil
	},
}

// configureCurve merges config file and flags, then resolves the weight
// function through a fresh slot. The caller owns the returned slot.
func configureCurve(cmd *cobra.Command) (*weightfn.Slot, curve.Curve, error) {
	name, args, yOpt, w := fnName, fnArgs, yOptimum, width

	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			logger.Error("cannot load config", zap.String("path", configPath), zap.Error(err))

			return nil, nil, err
		}

		// explicit flags win over file values
		if cfg.Function != "" && !cmd.Flags().Changed("weight-function") {
			name = cfg.Function
		}
		if cfg.Arguments != nil && !cmd.Flags().Changed("weight-function-arg") {
			args = cfg.Arguments
		}
		if cfg.YOptimum != nil && !cmd.Flags().Changed("y-optimum") {
			yOpt = *cfg.YOptimum
		}
		if cfg.Width != nil && !cmd.Flags().Changed("width") {
			w = *cfg.Width
		}
	}

	opts := weightfn.DefaultOptions()
	opts.Loader = dynload.NewScriptLoader()
	opts.SelfCheck = selfCheck

	logger.Debug("resolving weight function",
		zap.String("function", name),
		zap.Strings("arguments", args),
		zap.Float64("y_optimum", yOpt),
		zap.Float64("width", w))

	slot := &weightfn.Slot{}
	c, err := slot.Make(name, args, yOpt, w, &opts)
	if err != nil {
		logger.Error("cannot configure weight function", zap.Error(err))

		return nil, nil, err
	}

	fnName = name // keep reporting consistent when the name came from the file

	return slot, c, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&fnName, "weight-function", "f", "gauss", "built-in name or script path")
	pf.StringArrayVarP(&fnArgs, "weight-function-arg", "a", nil, "symbol name, then arguments for a dynamic curve (repeatable)")
	pf.Float64Var(&yOptimum, "y-optimum", curve.DefaultYOptimum, "brightness of maximal weight")
	pf.Float64Var(&width, "width", curve.DefaultWidth, "full width at half maximum")
	pf.IntVarP(&samples, "samples", "n", 1000, "sample grid size (min 2)")
	pf.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	pf.BoolVar(&selfCheck, "self-check", false, "range-check dynamic curves right after loading")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(dumpCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "expoweight: %v\n", err)
		os.Exit(1)
	}
}
