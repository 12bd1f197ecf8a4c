// ocol2d runs the collision predicates over scene files.
//
// Usage:
//
//	ocol2d check <scene.yaml>              - List the colliding body pairs
//	ocol2d query <scene.yaml> --x X --y Y  - List the bodies containing a point
//
// Global flags:
//
//	--workers <n>  - Goroutines used for detection (default: $OCOL2D_WORKERS or 1)
//	--verbose      - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagWorkers int
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ocol2d",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ocol2d",
	Short: "Exact 2D collision checks between points, segments, circles and rotated rectangles",
	Long: `ocol2d loads a YAML scene of bodies and runs the collision predicates on it.

Examples:
  ocol2d check scene.yaml
  ocol2d query scene.yaml --x 2.5 --y 7
  ocol2d check scene.yaml --workers 4 --verbose`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", defaultWorkers(), "Goroutines used for detection")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(queryCmd)
}
