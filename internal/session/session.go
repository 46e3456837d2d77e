// Package session porte l'état de travail courant : la session active, les
// cues parsés et le guion en cours d'édition. L'état est un objet explicite
// possédé par l'orchestrateur, pas des variables ambiantes.
package session

import (
	"errors"
	"fmt"

	"github.com/patrickprogramme/scribeur/internal/script"
	"github.com/patrickprogramme/scribeur/internal/transcript"
	"github.com/patrickprogramme/scribeur/pkg/model"
)

// ErrUnparsed : le texte collé n'a produit aucun cue.
var ErrUnparsed = errors.New("transcription non reconnue (formats acceptés : range \"-->\" ou crochet \"[MM:SS]\")")

// Session est l'état d'une session de travail. ID est vide tant que la
// session n'a pas été créée dans l'historique.
type Session struct {
	ID           string
	URL          string
	OriginalText string
	Cues         []transcript.Cue
	Script       []model.ScriptEntry
}

// New parse le texte collé et construit une session neuve : le guion démarre
// vide, une ligne par cue. Retourne aussi le Result du parse pour que
// l'appelant puisse signaler les lignes écartées.
func New(url, raw string) (*Session, transcript.Result, error) {
	res := transcript.Parse(raw)
	if len(res.Cues) == 0 {
		return nil, res, ErrUnparsed
	}
	return &Session{
		URL:          url,
		OriginalText: raw,
		Cues:         res.Cues,
		Script:       script.Align(res.Cues, nil),
	}, res, nil
}

// Restore reconstruit l'état de travail depuis une session d'historique en
// re-parsant son texte original. Si le re-parse ne donne rien mais qu'un
// guion sauvegardé existe, les temps de base sont dérivés du guion : le
// texte saisi n'est pas perdu même si la table de transcription restera
// vide. Ni l'un ni l'autre -> erreur nommant la session.
func Restore(saved model.Session) (*Session, error) {
	res := transcript.Parse(saved.OriginalText)
	cues := res.Cues

	if len(cues) == 0 {
		if len(saved.Script) == 0 {
			return nil, fmt.Errorf("session %s : ni transcription exploitable ni guion sauvegardé", saved.ID)
		}
		for _, e := range saved.Script {
			cues = append(cues, transcript.Cue{Start: e.StartTime})
		}
	}

	return &Session{
		ID:           saved.ID,
		URL:          saved.URL,
		OriginalText: saved.OriginalText,
		Cues:         cues,
		Script:       script.Align(cues, saved.Script),
	}, nil
}

// Edit remplace le texte de la ligne de guion au temps start.
func (s *Session) Edit(start float64, text string) {
	s.Script = script.Apply(s.Script, start, text)
}

// Row retourne le cue et la ligne de guion d'index i (0-based), ou false si
// l'index sort de la table.
func (s *Session) Row(i int) (transcript.Cue, model.ScriptEntry, bool) {
	if i < 0 || i >= len(s.Cues) || i >= len(s.Script) {
		return transcript.Cue{}, model.ScriptEntry{}, false
	}
	return s.Cues[i], s.Script[i], true
}

// Len : nombre de lignes des deux tables (toujours identique par alignement).
func (s *Session) Len() int {
	return len(s.Cues)
}
