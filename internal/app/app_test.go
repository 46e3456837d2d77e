package app

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/scribeur/internal/config"
	"github.com/patrickprogramme/scribeur/internal/export"
	"github.com/patrickprogramme/scribeur/internal/history"
	"github.com/patrickprogramme/scribeur/internal/ui"
)

// mockUI déroule des réponses pré-enregistrées, dans le style "injecter une
// implémentation mock" suggéré par le constructeur de App.
type mockUI struct {
	url        string
	transcript string
	commands   []ui.Command
	rowTexts   []string

	infos  []string
	errs   []string
	tables [][]ui.TableRow
}

func (m *mockUI) GetURL(ctx context.Context) (string, error)        { return m.url, nil }
func (m *mockUI) GetTranscript(ctx context.Context) (string, error) { return m.transcript, nil }

func (m *mockUI) ShowSession(ctx context.Context, head ui.SessionHead, rows []ui.TableRow) {
	m.tables = append(m.tables, rows)
}
func (m *mockUI) ShowHistory(ctx context.Context, items []ui.HistoryItem) {}

func (m *mockUI) ReadCommand(ctx context.Context) (ui.Command, error) {
	if len(m.commands) == 0 {
		return ui.Command{Kind: ui.CmdQuit}, nil
	}
	cmd := m.commands[0]
	m.commands = m.commands[1:]
	return cmd, nil
}

func (m *mockUI) ReadRowText(ctx context.Context, row ui.TableRow) (string, error) {
	if len(m.rowTexts) == 0 {
		return "", nil
	}
	text := m.rowTexts[0]
	m.rowTexts = m.rowTexts[1:]
	return text, nil
}

func (m *mockUI) PrintInfo(ctx context.Context, s string)  { m.infos = append(m.infos, s) }
func (m *mockUI) PrintError(ctx context.Context, s string) { m.errs = append(m.errs, s) }

func newTestApp(t *testing.T, mock *mockUI) (*App, *history.Store) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		OutputDir:    t.TempDir(),
		ExportFormat: "md",
		MaxHistory:   50,
		FetchTitles:  false, // pas de réseau dans les tests
	}
	store := history.NewStore(filepath.Join(t.TempDir(), "history.json"), cfg.MaxHistory, log)

	renderer, err := export.DefaultRenderer()
	require.NoError(t, err)

	return New(cfg, mock, store, renderer, log), store
}

func TestRun_EditThenQuitPersistsScript(t *testing.T) {
	mock := &mockUI{
		url:        "https://example.com/video/7312345678901234567",
		transcript: "[0:05] Hi there\n[1:10] Second line",
		commands: []ui.Command{
			{Kind: ui.CmdEdit, Row: 1},
			{Kind: ui.CmdQuit},
		},
		rowTexts: []string{"bonjour"},
	}
	a, store := newTestApp(t, mock)

	require.NoError(t, a.Run(context.Background(), &CLIFlags{}))

	sessions := store.List()
	require.Len(t, sessions, 1)
	require.Len(t, sessions[0].Script, 2, "l'édition sauvegarde l'état complet")
	assert.Equal(t, "bonjour", sessions[0].Script[0].Text)
	assert.Equal(t, float64(5), sessions[0].Script[0].StartTime)

	require.NotEmpty(t, mock.tables, "la table doit avoir été affichée")
	assert.Equal(t, "Hi there", mock.tables[0][0].Transcript)
}

func TestRun_UnparsableTranscriptRejectedWithoutState(t *testing.T) {
	mock := &mockUI{
		url:        "https://example.com/video/1",
		transcript: "du texte sans le moindre horodatage",
	}
	a, store := newTestApp(t, mock)

	require.NoError(t, a.Run(context.Background(), &CLIFlags{}))

	assert.Empty(t, store.List(), "échec de parse : aucune session créée")
	require.NotEmpty(t, mock.errs)
	assert.Contains(t, strings.Join(mock.errs, " "), "Impossible de traiter")
}

func TestRun_MissingInputRejected(t *testing.T) {
	mock := &mockUI{url: "", transcript: "[0:05] Hi"}
	a, store := newTestApp(t, mock)

	require.NoError(t, a.Run(context.Background(), &CLIFlags{}))
	assert.Empty(t, store.List())
	require.NotEmpty(t, mock.errs)
}

func TestOpenSession_RoundTripKeepsEdits(t *testing.T) {
	mock := &mockUI{}
	a, store := newTestApp(t, mock)
	ctx := context.Background()

	require.NoError(t, a.StartSession(ctx, "https://example.com/video/1", "[0:05] Hi\n[1:10] Yo"))
	firstID := a.sess.ID
	a.sess.Edit(70, "texte gardé")
	require.NoError(t, store.Save(firstID, a.sess.Script))

	// nouvelle session, puis retour à la première
	require.NoError(t, a.StartSession(ctx, "https://example.com/video/2", "[0:03] Autre"))
	require.NoError(t, a.OpenSession(ctx, firstID))

	require.Equal(t, 2, a.sess.Len())
	_, entry, ok := a.sess.Row(1)
	require.True(t, ok)
	assert.Equal(t, "texte gardé", entry.Text)
}

func TestOpenSession_UnusableSessionIsDeselected(t *testing.T) {
	mock := &mockUI{}
	a, store := newTestApp(t, mock)
	ctx := context.Background()

	// session dont le texte ne se re-parse pas et sans guion de secours
	id, err := store.Create("https://example.com/video/1", "court", nil)
	require.NoError(t, err)

	err = a.OpenSession(ctx, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), id, "l'erreur nomme la session")
	assert.Nil(t, a.sess, "la session est désélectionnée, l'affichage vidé")

	_, err = store.Load("inexistant")
	assert.ErrorIs(t, err, history.ErrNotFound)
}
