// Package export rend le guion terminé sous forme de note (markdown ou
// texte) et l'écrit atomiquement sur disque.
package export

import (
	"fmt"
	"time"

	"github.com/patrickprogramme/scribeur/internal/fsutil"
	"github.com/patrickprogramme/scribeur/internal/session"
	"github.com/patrickprogramme/scribeur/internal/transcript"
	"github.com/patrickprogramme/scribeur/internal/video"
)

// Row est une ligne rendue : horodatage formaté + texte du guion.
type Row struct {
	Clock string
	Text  string
}

// NoteData contient les données "brutes" pour la note.
type NoteData struct {
	URL      string
	VideoID  string
	Title    string
	Date     string // formaté YYYY-MM-DD
	Rows     []Row
	Filename string
}

// NewNoteData construit NoteData depuis la session de travail courante.
// title peut venir du lookup oEmbed ; vide -> dérivé de l'URL.
func NewNoteData(s *session.Session, title string) NoteData {
	if title == "" {
		title = video.Title(s.URL)
	}

	id := video.ExtractID(s.URL)
	dateStr := time.Now().Format("2006-01-02")

	rows := make([]Row, 0, len(s.Script))
	for _, e := range s.Script {
		rows = append(rows, Row{
			Clock: transcript.FormatClock(e.StartTime),
			Text:  e.Text,
		})
	}

	base := fsutil.SanitizeFilename(title)
	suffixe := dateStr
	if id != "" {
		suffixe = id
	}

	return NoteData{
		URL:      s.URL,
		VideoID:  id,
		Title:    fsutil.CapitalizeFirst(title),
		Date:     dateStr,
		Rows:     rows,
		Filename: fmt.Sprintf("%s %s", base, suffixe),
	}
}

// WriteNote rend la note dans le format demandé ("md" ou "txt") et l'écrit
// dans outDir. Collision de nom -> suffixe, jamais d'écrasement.
func (r *Renderer) WriteNote(outDir, format string, data NoteData) (string, error) {
	if format != "md" && format != "txt" {
		return "", fmt.Errorf("format d'export inconnu : %q", format)
	}
	content, err := r.Render("script_note."+format+".tmpl", data)
	if err != nil {
		return "", err
	}
	return fsutil.SaveNoteAtomic(outDir, data.Filename, format, content, false)
}
