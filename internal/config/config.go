package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/scribeur/internal/assets"
	"github.com/patrickprogramme/scribeur/internal/fsutil"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Historique
	HistoryPath string `yaml:"history_path"`
	MaxHistory  int    `yaml:"max_history"`

	// Export du guion
	OutputDir    string `yaml:"output_dir"`
	ExportFormat string `yaml:"export_format"` // "md" ou "txt"

	// Entrée
	UseClipboard bool `yaml:"use_clipboard"`

	// Réseau (titre oEmbed, purement décoratif)
	FetchTitles bool `yaml:"fetch_titles"`

	// Logs
	LogLevel string `yaml:"log_level"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	c.HistoryPath = "scribeur_history.json"
	c.MaxHistory = 50

	c.OutputDir = "."
	c.ExportFormat = "md"

	c.UseClipboard = true
	c.FetchTitles = true

	c.LogLevel = "info"

	c.ConfigVersion = CurrentConfigVersion
	return c
}

// Load lit la config ; si le fichier n'existe pas, il est créé depuis
// l'exemple embarqué. Les champs absents du YAML gardent leurs défauts.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "scribeur.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// version du fichier plus ancienne -> sauvegarde + migration + réécriture
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	c.HistoryPath = filepath.Clean(strings.TrimSpace(c.HistoryPath))
	if c.HistoryPath == "" || c.HistoryPath == "." {
		c.HistoryPath = "scribeur_history.json"
	}
	if c.MaxHistory <= 0 {
		c.MaxHistory = 50
	}

	c.OutputDir = filepath.Clean(c.OutputDir)

	c.ExportFormat = strings.TrimSpace(strings.ToLower(c.ExportFormat))
	if c.ExportFormat != "md" && c.ExportFormat != "txt" {
		c.ExportFormat = "md"
	}

	c.LogLevel = strings.TrimSpace(strings.ToLower(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
