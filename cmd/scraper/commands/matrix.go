package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"socionics-wiki/internal/dataset"
	"socionics-wiki/internal/service"
)

var matrixData string

func init() {
	matrixCmd.Flags().StringVar(&matrixData, "data", "data", "Dataset directory to read.")
	rootCmd.AddCommand(matrixCmd)
}

var matrixCmd = &cobra.Command{
	Use:   "matrix [--data <dir>]",
	Short: "Prints the 16x16 intertype relation table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(matrixData)
		if err != nil {
			return err
		}
		renderMatrix(cmd.OutOrStdout(), service.NewRelationService(logger, ds, nil).Matrix())
		return nil
	},
}

func renderMatrix(w io.Writer, m service.RelationMatrix) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{""}
	for _, code := range m.Codes {
		header = append(header, code)
	}
	t.AppendHeader(header)

	for i, code := range m.Codes {
		row := table.Row{code}
		for _, label := range m.Labels[i] {
			row = append(row, string(label))
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
