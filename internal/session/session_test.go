package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/scribeur/pkg/model"
)

func TestNew_ParsesAndAlignsEmptyScript(t *testing.T) {
	s, res, err := New("https://example.com/video/1", "[0:05] Hi there\n[1:10] Second line")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	require.Len(t, s.Script, 2)
	assert.Equal(t, float64(5), s.Script[0].StartTime)
	assert.Empty(t, s.Script[0].Text, "le guion démarre vide")
	assert.Zero(t, res.Skipped)
	assert.Empty(t, s.ID, "pas encore créée dans l'historique")
}

func TestNew_UnparsableTextFails(t *testing.T) {
	_, _, err := New("https://example.com/video/1", "rien d'horodaté dans ce texte")
	assert.ErrorIs(t, err, ErrUnparsed)
}

func TestRestore_ReparsesAndJoinsSavedScript(t *testing.T) {
	saved := model.Session{
		ID:           "123",
		URL:          "https://example.com/video/1",
		OriginalText: "[0:05] Hi there\n[1:10] Second line",
		Script:       []model.ScriptEntry{{StartTime: 70, Text: "déjà écrit"}},
	}

	s, err := Restore(saved)
	require.NoError(t, err)
	assert.Equal(t, "123", s.ID)
	require.Equal(t, 2, s.Len())
	assert.Empty(t, s.Script[0].Text)
	assert.Equal(t, "déjà écrit", s.Script[1].Text)
}

func TestRestore_FallsBackToSavedScriptTimes(t *testing.T) {
	// texte original devenu inexploitable, mais un guion existe : les temps
	// de base viennent du guion, le texte saisi n'est pas perdu
	saved := model.Session{
		ID:           "456",
		OriginalText: "courte",
		Script: []model.ScriptEntry{
			{StartTime: 5, Text: "un"},
			{StartTime: 70, Text: "deux"},
		},
	}

	s, err := Restore(saved)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "un", s.Script[0].Text)
	assert.Equal(t, "deux", s.Script[1].Text)
	assert.False(t, s.Cues[0].HasEnd)
	assert.Empty(t, s.Cues[0].Text, "la table de transcription reste vide")
}

func TestRestore_NothingUsableFails(t *testing.T) {
	saved := model.Session{ID: "789", OriginalText: "court"}
	_, err := Restore(saved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "789", "l'erreur nomme la session")
}

func TestEdit_PersistsInScriptBuffer(t *testing.T) {
	s, _, err := New("u", "[0:05] Hi\n[1:10] Yo")
	require.NoError(t, err)

	s.Edit(5, "bonjour")
	cue, entry, ok := s.Row(0)
	require.True(t, ok)
	assert.Equal(t, float64(5), cue.Start)
	assert.Equal(t, "bonjour", entry.Text)

	_, _, ok = s.Row(99)
	assert.False(t, ok)
}
