// Package app orchestre les dépendances (UI, historique, export) autour de
// l'état de session. Toute la logique d'enchaînement vit ici ; la logique de
// parsing et d'alignement vit dans transcript et script.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/patrickprogramme/scribeur/internal/clipboard"
	"github.com/patrickprogramme/scribeur/internal/config"
	"github.com/patrickprogramme/scribeur/internal/export"
	"github.com/patrickprogramme/scribeur/internal/history"
	"github.com/patrickprogramme/scribeur/internal/session"
	"github.com/patrickprogramme/scribeur/internal/transcript"
	"github.com/patrickprogramme/scribeur/internal/ui"
	"github.com/patrickprogramme/scribeur/internal/video"
)

// CLIFlags contient les informations venant des flags de l'app.
type CLIFlags struct {
	ConfigPath    string
	URL           string
	File          string // lire la transcription depuis un fichier
	FromClipboard bool   // lire la transcription depuis le presse-papier
}

// App orchestre une session de travail.
// Pour les tests, on construit App en injectant une ui.Interface mock.
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	store    *history.Store
	renderer *export.Renderer
	log      *logrus.Logger

	sess  *session.Session
	title string // titre oEmbed de la session courante, vide si inconnu
}

// New construit l'application avec ses dépendances injectées.
func New(cfg *config.Config, uiClient ui.Interface, store *history.Store, renderer *export.Renderer, log *logrus.Logger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		store:    store,
		renderer: renderer,
		log:      log,
	}
}

// Run exécute le flux principal : capture (url, transcription), création de
// la session, puis boucle interactive d'édition.
func (a *App) Run(ctx context.Context, flags *CLIFlags) error {
	url := flags.URL
	if url == "" {
		u, err := a.ui.GetURL(ctx)
		if err != nil {
			return fmt.Errorf("get url: %w", err)
		}
		url = u
	}

	raw, err := a.readTranscript(ctx, flags)
	if err != nil {
		return err
	}

	// rejet d'entrée : aucune modification d'état
	if strings.TrimSpace(url) == "" || strings.TrimSpace(raw) == "" {
		a.ui.PrintError(ctx, "Veuillez fournir l'URL de la vidéo et la transcription.")
		return nil
	}

	if err := a.StartSession(ctx, url, raw); err != nil {
		if errors.Is(err, session.ErrUnparsed) {
			a.ui.PrintError(ctx, "Impossible de traiter la transcription. Vérifiez le format (\"-->\" ou \"[MM:SS] texte\").")
			return nil
		}
		return err
	}

	return a.Loop(ctx)
}

// ResumeLatest recharge la session la plus récente de l'historique puis
// entre dans la boucle interactive.
func (a *App) ResumeLatest(ctx context.Context) error {
	sessions := a.store.List()
	if len(sessions) == 0 {
		a.ui.PrintError(ctx, "Pas d'historique à reprendre.")
		return nil
	}
	if err := a.OpenSession(ctx, sessions[0].ID); err != nil {
		a.ui.PrintError(ctx, err.Error())
		return nil
	}
	return a.Loop(ctx)
}

func (a *App) readTranscript(ctx context.Context, flags *CLIFlags) (string, error) {
	switch {
	case flags.File != "":
		b, err := os.ReadFile(flags.File)
		if err != nil {
			return "", fmt.Errorf("lecture du fichier de transcription: %w", err)
		}
		return string(b), nil
	case flags.FromClipboard:
		clip, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("lecture du presse-papier: %w", err)
		}
		return clip, nil
	default:
		return a.ui.GetTranscript(ctx)
	}
}

// StartSession parse le texte collé, crée l'entrée d'historique et en fait
// la session active.
func (a *App) StartSession(ctx context.Context, url, raw string) error {
	raw = strings.TrimSpace(raw)
	sess, res, err := session.New(url, raw)
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		a.log.WithFields(logrus.Fields{
			"format":  res.Format,
			"skipped": res.Skipped,
		}).Warn("lignes écartées pendant le parse")
	}

	// le guion initial persiste vide ; les lignes alignées vides ne sont que
	// de l'état d'affichage
	id, err := a.store.Create(url, raw, nil)
	if err != nil {
		return fmt.Errorf("création de la session dans l'historique: %w", err)
	}
	sess.ID = id
	a.sess = sess
	a.refreshTitle(ctx)
	return nil
}

// OpenSession sauvegarde l'état courant puis recharge la session id depuis
// l'historique. En cas d'échec de reconstruction, l'affichage est vidé et la
// session désélectionnée ; l'erreur retournée nomme la session.
func (a *App) OpenSession(ctx context.Context, id string) error {
	a.saveCurrent()

	saved, err := a.store.Load(id)
	if err != nil {
		return err
	}

	restored, err := session.Restore(saved)
	if err != nil {
		a.sess = nil
		a.title = ""
		return err
	}

	a.sess = restored
	a.refreshTitle(ctx)
	return nil
}

// Loop est la boucle interactive : affichage, commande, action. Chaque
// édition validée déclenche une sauvegarde de la session active.
func (a *App) Loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			a.saveCurrent()
			return err
		}

		a.render(ctx)

		cmd, err := a.ui.ReadCommand(ctx)
		if err != nil {
			a.saveCurrent()
			return err
		}

		switch cmd.Kind {
		case ui.CmdQuit:
			a.saveCurrent()
			return nil

		case ui.CmdEdit:
			a.editRow(ctx, cmd.Row)

		case ui.CmdFocus:
			a.focusRow(ctx, cmd.Row)

		case ui.CmdHistory:
			a.showHistory(ctx)

		case ui.CmdOpen:
			if cmd.Arg == "" {
				a.ui.PrintError(ctx, "usage : o <id>")
				continue
			}
			if err := a.OpenSession(ctx, cmd.Arg); err != nil {
				if errors.Is(err, history.ErrNotFound) {
					a.ui.PrintError(ctx, fmt.Sprintf("Session %s introuvable dans l'historique.", cmd.Arg))
				} else {
					a.ui.PrintError(ctx, fmt.Sprintf("Impossible de charger la session : %v", err))
				}
			}

		case ui.CmdExport:
			a.exportNote(ctx)

		case ui.CmdHelp, ui.CmdNone:
			// le menu est réaffiché à la prochaine lecture
		}
	}
}

func (a *App) editRow(ctx context.Context, humanRow int) {
	if a.sess == nil {
		a.ui.PrintError(ctx, "Aucune session active.")
		return
	}
	cue, entry, ok := a.sess.Row(humanRow - 1)
	if !ok {
		a.ui.PrintError(ctx, fmt.Sprintf("Ligne %d inconnue (1..%d).", humanRow, a.sess.Len()))
		return
	}

	text, err := a.ui.ReadRowText(ctx, ui.TableRow{
		Index:      humanRow,
		Clock:      transcript.FormatClock(cue.Start),
		Transcript: cue.Text,
		Script:     entry.Text,
	})
	if err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("Saisie interrompue : %v", err))
		return
	}

	a.sess.Edit(entry.StartTime, text)
	// l'équivalent du blur : la validation de la saisie persiste l'état complet
	if err := a.store.Save(a.sess.ID, a.sess.Script); err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("Sauvegarde impossible : %v", err))
	}
}

func (a *App) focusRow(ctx context.Context, humanRow int) {
	if a.sess == nil {
		a.ui.PrintError(ctx, "Aucune session active.")
		return
	}
	cue, entry, ok := a.sess.Row(humanRow - 1)
	if !ok {
		a.ui.PrintError(ctx, fmt.Sprintf("Ligne %d inconnue (1..%d).", humanRow, a.sess.Len()))
		return
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("%s  %s", transcript.FormatClock(cue.Start), cue.Text))
	if entry.Text != "" {
		a.ui.PrintInfo(ctx, fmt.Sprintf("guion : %s", entry.Text))
	}
	// le lecteur embarqué ne se pilote pas : l'horodatage affiché sert de repère manuel
}

// ShowHistoryList affiche l'historique, pour la sous-commande history.
func (a *App) ShowHistoryList(ctx context.Context) {
	a.showHistory(ctx)
}

// ExportByID restaure la session id (ou la plus récente si id est vide) et
// écrit la note, sans passer par la boucle interactive.
func (a *App) ExportByID(ctx context.Context, id string) (string, error) {
	if id == "" {
		sessions := a.store.List()
		if len(sessions) == 0 {
			return "", fmt.Errorf("pas d'historique à exporter")
		}
		id = sessions[0].ID
	}
	if err := a.OpenSession(ctx, id); err != nil {
		return "", err
	}
	data := export.NewNoteData(a.sess, a.title)
	return a.renderer.WriteNote(a.cfg.OutputDir, a.cfg.ExportFormat, data)
}

func (a *App) showHistory(ctx context.Context) {
	sessions := a.store.List()
	items := make([]ui.HistoryItem, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, ui.HistoryItem{
			ID:      s.ID,
			Title:   video.Title(s.URL),
			SavedAt: s.Timestamp,
			Active:  a.sess != nil && s.ID == a.sess.ID,
		})
	}
	a.ui.ShowHistory(ctx, items)
}

func (a *App) exportNote(ctx context.Context) {
	if a.sess == nil {
		a.ui.PrintError(ctx, "Aucune session active à exporter.")
		return
	}
	data := export.NewNoteData(a.sess, a.title)
	path, err := a.renderer.WriteNote(a.cfg.OutputDir, a.cfg.ExportFormat, data)
	if err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("Export impossible : %v", err))
		return
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("Note écrite : %s", path))
}

func (a *App) render(ctx context.Context) {
	if a.sess == nil {
		return
	}
	rows := make([]ui.TableRow, 0, a.sess.Len())
	for i := 0; i < a.sess.Len(); i++ {
		cue, entry, _ := a.sess.Row(i)
		rows = append(rows, ui.TableRow{
			Index:      i + 1,
			Clock:      transcript.FormatClock(cue.Start),
			Transcript: cue.Text,
			Script:     entry.Text,
		})
	}
	a.ui.ShowSession(ctx, ui.SessionHead{
		URL:     a.sess.URL,
		VideoID: video.ExtractID(a.sess.URL),
		Title:   a.title,
	}, rows)
}

// saveCurrent persiste la session active ; best-effort, les échecs sont loggés.
func (a *App) saveCurrent() {
	if a.sess == nil || a.sess.ID == "" {
		return
	}
	if err := a.store.Save(a.sess.ID, a.sess.Script); err != nil {
		a.log.WithError(err).Warn("sauvegarde de la session courante impossible")
	}
}

func (a *App) refreshTitle(ctx context.Context) {
	a.title = ""
	if a.cfg != nil && a.cfg.FetchTitles && a.sess != nil {
		a.title = video.LookupTitle(ctx, a.sess.URL, a.log)
	}
}
