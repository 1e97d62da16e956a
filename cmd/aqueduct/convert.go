package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/units"
)

var convertDecimals int

var convertCmd = &cobra.Command{
	Use:   "convert [length]",
	Short: "Convert a metric length string",
	Long: `Parse a metric length string such as "140.2cm", "1.5 km" or "800 mm" and
print it in meters and in the most readable display unit.

A bare number is taken as meters. Unknown unit tokens are ignored.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().IntVar(&convertDecimals, "decimals", units.DefaultDecimals, "decimal places in the formatted output")
}

func runConvert(cmd *cobra.Command, args []string) {
	// Allow the length and unit as separate arguments: convert 75 cm
	input := strings.Join(args, " ")

	meters := units.ParseLength(input)
	if math.IsNaN(meters) {
		fmt.Fprintf(os.Stderr, "Error: cannot parse length %q\n", input)
		os.Exit(1)
	}

	fmt.Printf("%g m\n", meters)
	fmt.Printf("%s\n", units.FormatMeters(meters, convertDecimals))
}
