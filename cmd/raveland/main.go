package main

import (
	"os"

	"github.com/raveland/raveland/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raveland",
	Short: "Inspect Raveland presets, parameters and visuals",
	Long: `raveland prints what the Raveland front panel would show, without a
window: the preset catalog, parameter values, the control layout and the
geometry of the decorative displays.`,
	Version:      version.VersionOrHash,
	SilenceUsage: true,
}

var presetsCmd = &cobra.Command{
	Use:   "presets [query]",
	Short: "List the presets grouped by category",
	Long: `List the builtin and user presets, grouped the way the preset browser
groups them. With a query, only presets whose name contains it are listed.

Examples:
  raveland presets
  raveland presets trance`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresets,
}

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print a parameter of a preset",
	Long: `Print one leaf of the parameter tree, addressed by its dot path.

Examples:
  raveland get fx.filter.cutoff
  raveland get osc.1.wave --preset 1`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Apply a value through its control and print the result",
	Long: `Apply a value to a parameter the way the front panel does: numbers are
snapped to the control step and clamped to its range, choices must be one of
the options. The value the parameter holds afterwards is printed.

Examples:
  raveland set fx.filter.cutoff 25000
  raveland set layers.A.enabled false`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List every parameter path and its control",
	RunE:  runPaths,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a preset as yaml",
	RunE:  runDump,
}

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Print the first stars of the background starfield",
	RunE:  runStars,
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Plot the modulation curve as text",
	Long: `Plot the modulation curve for a shape and amount.

Example:
  raveland curve --shape exp --amount 80`,
	RunE: runCurve,
}

var (
	presetIndex int
	starSeed    uint32
	starCount   int
	curveShape  string
	curveAmount float64
	curveWidth  int
	curveHeight int
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(starsCmd)
	rootCmd.AddCommand(curveCmd)

	for _, c := range []*cobra.Command{getCmd, setCmd, dumpCmd} {
		c.Flags().IntVarP(&presetIndex, "preset", "p", 0, "Preset index to start from")
	}
	starsCmd.Flags().Uint32Var(&starSeed, "seed", 1337, "Starfield seed")
	starsCmd.Flags().IntVarP(&starCount, "count", "n", 10, "Number of stars to print")
	curveCmd.Flags().StringVarP(&curveShape, "shape", "s", "sine", "Modulation shape (sine, triangle, square, exp, step4)")
	curveCmd.Flags().Float64VarP(&curveAmount, "amount", "a", 45, "Modulation amount in percent")
	curveCmd.Flags().IntVar(&curveWidth, "width", 60, "Plot width in characters")
	curveCmd.Flags().IntVar(&curveHeight, "height", 12, "Plot height in lines")
}
