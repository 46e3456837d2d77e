package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateStoragePaths vérifie que l'emplacement de l'historique et le
// répertoire d'export sont utilisables. Retourne des warnings non-fataux
// (dossier encore absent : il sera créé à la première écriture) et une
// erreur pour les cas réellement bloquants.
func (c *Config) ValidateStoragePaths() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	parent := filepath.Dir(c.HistoryPath)
	if st, serr := os.Stat(parent); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier parent de l'historique n'existe pas encore : %s", parent))
		} else {
			return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
		}
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le parent du fichier d'historique n'est pas un répertoire : %s", parent)
	}

	if st, serr := os.Stat(c.HistoryPath); serr == nil && st.IsDir() {
		return warnings, fmt.Errorf("le chemin d'historique est un répertoire : %s", c.HistoryPath)
	}

	if st, serr := os.Stat(c.OutputDir); serr == nil && !st.IsDir() {
		return warnings, fmt.Errorf("output_dir n'est pas un répertoire : %s", c.OutputDir)
	}

	return warnings, nil
}
