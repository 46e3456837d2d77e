package assets

import "embed"

//go:embed scribeur.example.yaml
//go:embed templates/*.tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "scribeur.example.yaml"

// DefaultTemplatePaths : templates embarqués, chemins relatifs DANS Embedded.
var DefaultTemplatePaths = []string{
	"templates/script_note.md.tmpl",
	"templates/script_note.txt.tmpl",
}
