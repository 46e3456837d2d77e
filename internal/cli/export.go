package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	exportFormatFlag string
	outputDirFlag    string
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Écrire la note d'une session (la plus récente si aucun id)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cfg, err := buildApp()
		if err != nil {
			return err
		}
		if exportFormatFlag != "" {
			cfg.ExportFormat = exportFormatFlag
		}
		if outputDirFlag != "" {
			cfg.OutputDir = outputDirFlag
		}

		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		path, err := a.ExportByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Note écrite : %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "", "format de la note (md ou txt) ; prime sur la config")
	exportCmd.Flags().StringVar(&outputDirFlag, "out", "", "répertoire de sortie ; prime sur la config")
	rootCmd.AddCommand(exportCmd)
}
