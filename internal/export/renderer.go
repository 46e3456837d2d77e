package export

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"
	"text/template"

	"github.com/patrickprogramme/scribeur/internal/assets"
)

// Renderer gère le parsing paresseux (lazy) des templates d'export et
// fournit les méthodes de rendu.
type Renderer struct {
	templates *template.Template
	fsys      fs.FS    // source des templates (embed.FS ou os.DirFS)
	patterns  []string // patterns relatifs au fsys, ex: "templates/*.tmpl"
	once      sync.Once
	err       error // mémorise l'erreur d'initialisation (utile avec once)
}

// NewRendererFromFS construit un Renderer qui parsera les patterns fournis
// depuis fsys au premier rendu (pas de parsing immédiat).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	return &Renderer{
		fsys:     fsys,
		patterns: append([]string(nil), patterns...),
	}, nil
}

// DefaultRenderer rend depuis les templates embarqués, parsés tout de suite.
func DefaultRenderer() (*Renderer, error) {
	r, err := NewRendererFromFS(assets.Embedded, []string{"templates/*.tmpl"})
	if err != nil {
		return nil, err
	}
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root")
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				r.err = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				return
			}
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force le parsing immédiat et retourne l'erreur éventuelle.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// Render exécute le template nommé tmplName (basename du fichier .tmpl).
func (r *Renderer) Render(tmplName string, data NoteData) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}
