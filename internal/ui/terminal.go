package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/patrickprogramme/scribeur/internal/clipboard"
)

var reHTTPURL = regexp.MustCompile(`(?i)^https?://`)

type terminalUI struct {
	reader       *bufio.Reader
	out          io.Writer
	useClipboard bool
}

// NewTerminal construit l'implémentation terminale. useClipboard pilote la
// capture d'URL depuis le presse-papier.
func NewTerminal(useClipboard bool) Interface {
	return &terminalUI{
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		useClipboard: useClipboard,
	}
}

func (t *terminalUI) GetURL(ctx context.Context) (string, error) {
	if t.useClipboard {
		if clip, err := clipboard.ReadAll(); err == nil {
			clip = strings.TrimSpace(clip)
			if reHTTPURL.MatchString(clip) {
				t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier : %s", clip))
				return clip, nil
			}
		}
	}

	fmt.Fprint(t.out, "URL de la vidéo de référence : ")
	input, err := t.reader.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("lecture stdin: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func (t *terminalUI) GetTranscript(ctx context.Context) (string, error) {
	fmt.Fprintln(t.out, "Collez la transcription puis terminez par une ligne contenant uniquement \".\" (ou Ctrl+D) :")

	var sb strings.Builder
	for {
		line, err := t.reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == "." {
			break
		}
		sb.WriteString(trimmed)
		sb.WriteString("\n")
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (t *terminalUI) ShowSession(ctx context.Context, head SessionHead, rows []TableRow) {
	fmt.Fprintln(t.out)
	if head.Title != "" {
		fmt.Fprintf(t.out, "▶ %s\n", head.Title)
	}
	if head.VideoID != "" {
		fmt.Fprintf(t.out, "Vidéo %s — %s\n", head.VideoID, head.URL)
	} else if head.URL != "" {
		fmt.Fprintln(t.out, head.URL)
	}

	w := tabwriter.NewWriter(t.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTemps\tTranscription\tGuion")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Index, r.Clock, r.Transcript, r.Script)
	}
	w.Flush()
}

func (t *terminalUI) ShowHistory(ctx context.Context, items []HistoryItem) {
	if len(items) == 0 {
		fmt.Fprintln(t.out, "Pas d'historique.")
		return
	}
	w := tabwriter.NewWriter(t.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Id\tTitre\tSauvegardé")
	for _, it := range items {
		marker := ""
		if it.Active {
			marker = " *"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\n", it.ID, it.Title, marker, it.SavedAt)
	}
	w.Flush()
}

func (t *terminalUI) ReadCommand(ctx context.Context) (Command, error) {
	fmt.Fprint(t.out, "\n[e <n>] éditer  [f <n>] voir  [h] historique  [o <id>] ouvrir  [x] exporter  [q] quitter\n> ")
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return Command{Kind: CmdQuit}, nil
		}
		return Command{}, fmt.Errorf("lecture stdin: %w", err)
	}
	return parseCommand(line), nil
}

func parseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdNone}
	}

	argRow := func() int {
		if len(fields) < 2 {
			return 0
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0
		}
		return n
	}

	switch strings.ToLower(fields[0]) {
	case "e", "edit":
		return Command{Kind: CmdEdit, Row: argRow()}
	case "f", "focus":
		return Command{Kind: CmdFocus, Row: argRow()}
	case "h", "history", "historique":
		return Command{Kind: CmdHistory}
	case "o", "open", "ouvrir":
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}
		return Command{Kind: CmdOpen, Arg: arg}
	case "x", "export":
		return Command{Kind: CmdExport}
	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}
	case "?", "help", "aide":
		return Command{Kind: CmdHelp}
	default:
		return Command{Kind: CmdNone}
	}
}

func (t *terminalUI) ReadRowText(ctx context.Context, row TableRow) (string, error) {
	fmt.Fprintf(t.out, "%s  %s\n", row.Clock, row.Transcript)
	if row.Script != "" {
		fmt.Fprintf(t.out, "guion actuel : %s\n", row.Script)
	}
	fmt.Fprint(t.out, "nouveau texte : ")
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("lecture stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Fprintln(t.out, s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}
