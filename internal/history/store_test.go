package history

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/scribeur/internal/transcript"
	"github.com/patrickprogramme/scribeur/pkg/model"
)

func newTestStore(t *testing.T, max int) *Store {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewStore(filepath.Join(t.TempDir(), "history.json"), max, log)
}

func TestList_MissingOrCorruptFileIsEmpty(t *testing.T) {
	s := newTestStore(t, 0)
	assert.Empty(t, s.List(), "fichier absent -> historique vide")

	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o644))
	assert.Empty(t, s.List(), "blob corrompu -> historique vide, pas de panique")
}

func TestCreate_DuplicatePairIsReplacedAndMovedToFront(t *testing.T) {
	s := newTestStore(t, 0)

	id1, err := s.Create("https://example.com/video/1", "[0:05] a", nil)
	require.NoError(t, err)
	_, err = s.Create("https://example.com/video/2", "[0:07] b", nil)
	require.NoError(t, err)

	// même paire (url, texte) que la première création
	id3, err := s.Create("https://example.com/video/1", "[0:05] a", nil)
	require.NoError(t, err)

	sessions := s.List()
	require.Len(t, sessions, 2, "le doublon remplace, il ne s'ajoute pas")
	assert.Equal(t, id3, sessions[0].ID, "la session remplacée revient en tête")
	assert.NotEqual(t, id1, sessions[0].ID)
}

func TestCreate_SameURLDifferentTextIsDistinct(t *testing.T) {
	s := newTestStore(t, 0)

	_, err := s.Create("https://example.com/video/1", "[0:05] a", nil)
	require.NoError(t, err)
	_, err = s.Create("https://example.com/video/1", "[0:05] a ", nil) // espace final
	require.NoError(t, err)

	// la clé est la paire exacte : une différence d'espace crée bien deux sessions
	assert.Len(t, s.List(), 2)
}

func TestCreate_EvictsOldestBeyondMax(t *testing.T) {
	s := newTestStore(t, 50)

	var firstID string
	for i := 0; i < 51; i++ {
		id, err := s.Create("https://example.com/video/1", string(rune('a'+i%26))+string(rune('0'+i/26)), nil)
		require.NoError(t, err)
		if i == 0 {
			firstID = id
		}
	}

	sessions := s.List()
	require.Len(t, sessions, 50)
	for _, sess := range sessions {
		assert.NotEqual(t, firstID, sess.ID, "la plus ancienne doit être évincée")
	}
}

func TestSave_UnknownOrEmptyIDDoesNotWrite(t *testing.T) {
	s := newTestStore(t, 0)
	id, err := s.Create("https://example.com/video/1", "[0:05] a", nil)
	require.NoError(t, err)
	before, err := os.ReadFile(s.path)
	require.NoError(t, err)

	require.NoError(t, s.Save("", []model.ScriptEntry{{StartTime: 5, Text: "x"}}))
	require.NoError(t, s.Save("does-not-exist", []model.ScriptEntry{{StartTime: 5, Text: "x"}}))

	after, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "ni l'id vide ni l'id inconnu ne doivent écrire")

	// l'id valide, lui, écrit bien
	require.NoError(t, s.Save(id, []model.ScriptEntry{{StartTime: 5, Text: "x"}}))
	loaded, err := s.Load(id)
	require.NoError(t, err)
	require.Len(t, loaded.Script, 1)
	assert.Equal(t, "x", loaded.Script[0].Text)
}

func TestLoad_NotFound(t *testing.T) {
	s := newTestStore(t, 0)
	_, err := s.Load("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoundTrip_OriginalTextReparsesIdentically(t *testing.T) {
	s := newTestStore(t, 0)
	raw := "00:00:01.000 --> 00:00:02.000\nHello\n\n00:00:03.000 --> 00:00:04.000\nWorld"

	id, err := s.Create("https://example.com/video/1", raw, []model.ScriptEntry{})
	require.NoError(t, err)

	loaded, err := s.Load(id)
	require.NoError(t, err)
	assert.Equal(t, raw, loaded.OriginalText, "le texte original est conservé tel quel")

	direct := transcript.Parse(raw)
	reloaded := transcript.Parse(loaded.OriginalText)
	require.Equal(t, len(direct.Cues), len(reloaded.Cues))
	for i := range direct.Cues {
		assert.Equal(t, direct.Cues[i].Start, reloaded.Cues[i].Start)
	}
}
