package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/asc2tikz/internal/config"
	"github.com/OpenTraceLab/asc2tikz/internal/logger"
	"github.com/OpenTraceLab/asc2tikz/pkg/convert"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	verbose    bool
	jsonLog    bool
	configFile string

	outputPath string
	noCenter   bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "asc2tikz <schematic.asc>",
	Short: "Convert LTspice schematics to circuitikz",
	Long: `asc2tikz converts an LTspice schematic (.asc) into a circuitikz picture.

Wires, resistors, capacitors, inductors, diodes, sources, npn/nmos
transistors, op amps and net flags are translated; everything else in the
schematic is ignored. The output is written next to the input with a .tex
extension unless --output is given.

Examples:
  asc2tikz amp.asc                 # writes amp.tex
  asc2tikz -o - amp.asc            # print to stdout
  asc2tikz --no-center amp.asc     # omit the center environment
  asc2tikz info amp.asc            # summarize without converting`,
	Version:           "0.1.0",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: setup,
	RunE:              runConvert,
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "log in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./asc2tikz.toml or ~/.config/asc2tikz/asc2tikz.toml)")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", `output file, "-" for stdout (default: input with .tex extension)`)
	rootCmd.Flags().BoolVar(&noCenter, "no-center", false, "do not wrap the picture in a center environment")
}

// setup resolves configuration and the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	v, err := config.New(configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	cfg, err = config.Load(v)
	if err != nil {
		return err
	}

	return logger.Initialize(cfg.Log.Level, cfg.Log.JSON)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlag("log.json", cmd.Root().PersistentFlags().Lookup("json-log")); err != nil {
		return errors.Wrap(err, "failed to bind flag")
	}
	if verbose {
		v.Set("log.level", "debug")
	}
	if noCenter {
		v.Set("output.center", false)
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	src := args[0]
	dst := outputPath
	if dst == "" {
		dst = convert.OutputPath(src, cfg.Output.Extension)
	}

	converter, err := convert.New(
		convert.WithLogger(logger.Logger.With("component", "convert")),
		convert.WithCenter(cfg.Output.Center),
	)
	if err != nil {
		return err
	}

	logger.Logger.Debugw("converting", "input", src, "output", dst)

	if _, err := converter.ConvertFile(src, dst); err != nil {
		return errors.Wrapf(err, "failed to convert %s", src)
	}
	return nil
}
