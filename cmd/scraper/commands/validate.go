package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"socionics-wiki/internal/dataset"
)

var validateData string

func init() {
	validateCmd.Flags().StringVar(&validateData, "data", "data", "Dataset directory to validate.")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [--data <dir>]",
	Short: "Checks the dataset invariants.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateDataset(cmd.OutOrStdout(), validateData)
	},
}

func validateDataset(w io.Writer, dir string) error {
	// Load ya valida los invariantes.
	ds, err := dataset.Load(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ok: %d types, %d dual pairs, %d glossary terms\n",
		len(ds.Types()), len(ds.Relations()), len(ds.Glossary()))
	return nil
}
