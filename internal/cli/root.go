// Package cli porte la surface en ligne de commande : la commande racine
// lance le mode interactif, les sous-commandes couvrent l'historique et
// l'export sans interaction.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/patrickprogramme/scribeur/internal/app"
	"github.com/patrickprogramme/scribeur/internal/assets"
	"github.com/patrickprogramme/scribeur/internal/bootstrap"
	"github.com/patrickprogramme/scribeur/internal/config"
	"github.com/patrickprogramme/scribeur/internal/export"
	"github.com/patrickprogramme/scribeur/internal/history"
	"github.com/patrickprogramme/scribeur/internal/ui"
)

var flags = &app.CLIFlags{}

var logLevelFlag string
var resumeFlag bool

var rootCmd = &cobra.Command{
	Use:   "scribeur",
	Short: "Coller une transcription vidéo et écrire son guion ligne par ligne",
	Long: `scribeur aligne une transcription collée (sous-titres "-->" ou lignes
"[MM:SS] texte") avec un guion à écrire, ligne par ligne, et garde les 50
dernières sessions dans un historique local.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := buildApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if resumeFlag {
			return a.ResumeLatest(ctx)
		}
		return a.Run(ctx, flags)
	},
}

// ExecuteContext lance la commande racine avec le contexte racine ; c'est le
// seul point d'entrée de main.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "chemin du fichier de configuration (défaut : scribeur.yaml à côté du binaire)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "niveau de log (debug, info, warn, error) ; prime sur la config")
	rootCmd.Flags().StringVar(&flags.URL, "url", "", "URL de la vidéo de référence (sinon presse-papier ou prompt)")
	rootCmd.Flags().StringVar(&flags.File, "file", "", "lire la transcription depuis un fichier au lieu du collage")
	rootCmd.Flags().BoolVar(&flags.FromClipboard, "from-clipboard", false, "lire la transcription depuis le presse-papier")
	rootCmd.Flags().BoolVar(&resumeFlag, "resume", false, "reprendre la session la plus récente de l'historique")
}

// buildApp fait le bootstrap complet : config (créée si absente), logger,
// historique, renderer, UI. Toutes les commandes passent par ici.
func buildApp() (*app.App, *config.Config, error) {
	cfg, logger, err := loadConfigAndLogger()
	if err != nil {
		return nil, nil, err
	}

	store := history.NewStore(cfg.HistoryPath, cfg.MaxHistory, logger)

	renderer, err := export.DefaultRenderer()
	if err != nil {
		return nil, nil, fmt.Errorf("impossible de construire le renderer : %w", err)
	}

	tui := ui.NewTerminal(cfg.UseClipboard)
	return app.New(cfg, tui, store, renderer, logger), cfg, nil
}

func loadConfigAndLogger() (*config.Config, *logrus.Logger, error) {
	// emplacement config par défaut : à côté du binaire
	binDir := "."
	if exePath, err := os.Executable(); err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}
	if flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "scribeur.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config load: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level := cfg.LogLevel
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warnf("niveau de log inconnu %q, info utilisé", level)
	}

	warnings, err := cfg.ValidateStoragePaths()
	for _, w := range warnings {
		logger.Warn(w)
	}
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
