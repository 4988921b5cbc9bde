package main

import (
	"fmt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/stringy/internal/pipeline"
	"os"
	"strings"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "stringy"
)

var (
	inputFile string
	inputText string

	rootCmd = &cobra.Command{
		Use:  AppName + " [flags] OPERATION... [-- WORD...]",
		Long: "Applies a chain of string operations to the input text.\nThe input comes from --file, --text, or the words after '--', joined with spaces.\n\nAvailable operations: " + strings.Join(pipeline.Names(), ", "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opNames := args
			var words []string
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				opNames = args[:dash]
				words = args[dash:]
			}

			input, err := pipeline.Input(afero.NewOsFs(), inputFile, inputText, cmd.Flags().Changed("text"), words)
			if err != nil {
				return err
			}

			result, err := pipeline.Run(input, opNames)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read the input text from this file")
	rootCmd.Flags().StringVarP(&inputText, "text", "t", "", "use this input text")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err)
		os.Exit(1)
	}
}
