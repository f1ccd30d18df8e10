// Command jsscan tokenizes JavaScript files and reports duplicate object keys.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:           "jsscan",
	Short:         "JavaScript scanner toolkit",
	Long:          `jsscan runs the ECMAScript scanner over source files and prints tokens or diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(dupkeysCmd)
	rootCmd.AddCommand(versionCmd)

	addRootFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}

func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	cmd.PersistentFlags().String("config", "", "path to the configuration file (default ./"+defaultConfigName+" if present)")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// configureColor enables or disables colored output for the whole process.
func configureColor(mode string, f *os.File) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(f)
	default:
		return fmt.Errorf("unknown color mode %q (must be auto, on or off)", mode)
	}
	return nil
}
