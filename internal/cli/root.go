package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "vialscan",
	Short: "vialscan - capture radiopharmaceutical vial records from scanned documents",
	Long: `vialscan reads pharmacy labels, certificates of analysis and vial
labels from captured images, extracts the dispensing fields, and reconciles
the prescription number between label and vial.

The scan command works offline against local image files; the export command
talks to the capture database.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
