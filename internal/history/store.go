// Package history persiste les sessions de travail dans un unique blob JSON
// local, borné aux 50 sessions les plus récentes (la plus récente en tête).
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/patrickprogramme/scribeur/internal/fsutil"
	"github.com/patrickprogramme/scribeur/pkg/model"
)

// ErrNotFound : aucun session ne porte l'id demandé.
var ErrNotFound = errors.New("session introuvable dans l'historique")

// DefaultMaxSessions : borne d'éviction par défaut.
const DefaultMaxSessions = 50

// Store lit et écrit le fichier d'historique. Toutes les écritures passent
// par fsutil.WriteFileAtomic : le blob est soit l'ancien, soit le nouveau,
// jamais un état intermédiaire.
type Store struct {
	path string
	max  int
	log  *logrus.Logger
}

// NewStore construit un Store sur le fichier path. max <= 0 -> borne par
// défaut. log nil -> logger standard.
func NewStore(path string, max int, log *logrus.Logger) *Store {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{path: path, max: max, log: log}
}

// List retourne les sessions persistées, la plus récente en premier.
// Fichier absent, illisible ou corrompu -> liste vide, warning loggé ;
// jamais d'erreur remontée à l'appelant (politique "pas d'historique").
func (s *Store) List() []model.Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Warn("historique illisible, traité comme vide")
		}
		return nil
	}

	var sessions []model.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		s.log.WithError(err).Warn("historique corrompu, traité comme vide")
		return nil
	}
	return sessions
}

// Create insère une nouvelle session en tête de liste et retourne son id.
// Si une session existante porte exactement la même paire (url, texte
// original), elle est retirée d'abord : sémantique remplacement-sur-doublon,
// clé = la paire, pas l'URL seule. La liste est ensuite tronquée à max
// sessions (la plus ancienne évincée).
func (s *Store) Create(url, originalText string, entries []model.ScriptEntry) (string, error) {
	existing := s.List()

	if entries == nil {
		// le schéma persisté attend toujours un tableau, jamais null
		entries = []model.ScriptEntry{}
	}
	sess := model.Session{
		ID:           s.newID(existing),
		URL:          url,
		OriginalText: originalText,
		Script:       append([]model.ScriptEntry(nil), entries...),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	out := make([]model.Session, 0, len(existing)+1)
	out = append(out, sess)
	for _, old := range existing {
		if old.URL == url && old.OriginalText == originalText {
			continue
		}
		out = append(out, old)
	}
	if len(out) > s.max {
		out = out[:s.max]
	}

	if err := s.persist(out); err != nil {
		return "", err
	}
	return sess.ID, nil
}

// Save réécrit le guion de la session activeID et persiste.
// activeID vide -> no-op. Session introuvable -> warning loggé, aucune
// écriture, pas d'erreur pour l'appelant.
func (s *Store) Save(activeID string, entries []model.ScriptEntry) error {
	if activeID == "" {
		return nil
	}

	sessions := s.List()
	for i := range sessions {
		if sessions[i].ID == activeID {
			sessions[i].Script = append([]model.ScriptEntry(nil), entries...)
			if sessions[i].Script == nil {
				sessions[i].Script = []model.ScriptEntry{}
			}
			return s.persist(sessions)
		}
	}

	s.log.WithField("id", activeID).Warn("session active absente de l'historique, sauvegarde ignorée")
	return nil
}

// Load retourne la session id sans modifier le fichier.
func (s *Store) Load(id string) (model.Session, error) {
	for _, sess := range s.List() {
		if sess.ID == id {
			return sess, nil
		}
	}
	return model.Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *Store) persist(sessions []model.Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encodage de l'historique: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("écriture de l'historique %s: %w", s.path, err)
	}
	return nil
}

// newID dérive un id du temps de création (millisecondes Unix en décimal).
// Deux créations dans la même milliseconde : on incrémente jusqu'à un id
// libre pour garder des jetons uniques et quasi monotones.
func (s *Store) newID(existing []model.Session) string {
	taken := make(map[string]struct{}, len(existing))
	for _, sess := range existing {
		taken[sess.ID] = struct{}{}
	}

	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if _, dup := taken[id]; !dup {
			return id
		}
		n++
	}
}
