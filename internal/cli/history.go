package cli

import (
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lister les sessions sauvegardées, de la plus récente à la plus ancienne",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := buildApp()
		if err != nil {
			return err
		}
		a.ShowHistoryList(cmd.Context())
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Rouvrir une session de l'historique et reprendre l'édition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := buildApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := a.OpenSession(ctx, args[0]); err != nil {
			return err
		}
		return a.Loop(ctx)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(openCmd)
}
