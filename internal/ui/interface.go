package ui

import "context"

// TableRow est une ligne appariée des deux tables : le texte de
// transcription (lecture seule) et la ligne de guion éditable, au même
// horodatage. Index est 1-based, c'est le numéro montré à l'utilisateur.
type TableRow struct {
	Index      int
	Clock      string
	Transcript string
	Script     string
}

// SessionHead : l'en-tête affiché au-dessus des tables.
type SessionHead struct {
	URL     string
	VideoID string
	Title   string
}

// HistoryItem : une entrée de la liste d'historique.
type HistoryItem struct {
	ID      string
	Title   string
	SavedAt string
	Active  bool
}

// CommandKind énumère les commandes du mode interactif.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdEdit             // éditer une ligne de guion
	CmdFocus            // montrer une ligne de transcription et son guion
	CmdHistory          // lister l'historique
	CmdOpen             // recharger une session par id
	CmdExport           // exporter le guion en note
	CmdHelp
	CmdQuit
)

// Command : une commande saisie, avec sa ligne (1-based) ou son argument.
type Command struct {
	Kind CommandKind
	Row  int
	Arg  string
}

type Interface interface {
	// GetURL renvoie l'URL de référence : presse-papier si son contenu
	// ressemble à une URL, sinon prompt. Peut renvoyer une chaîne vide,
	// l'appelant décide du rejet.
	GetURL(ctx context.Context) (string, error)

	// GetTranscript lit le texte collé multi-ligne, terminé par une ligne
	// "." seule ou EOF.
	GetTranscript(ctx context.Context) (string, error)

	ShowSession(ctx context.Context, head SessionHead, rows []TableRow)
	ShowHistory(ctx context.Context, items []HistoryItem)

	// ReadCommand lit et parse la prochaine commande interactive.
	ReadCommand(ctx context.Context) (Command, error)

	// ReadRowText lit le nouveau texte d'une ligne de guion. Le retour de
	// cette saisie vaut validation : c'est le déclencheur de sauvegarde.
	ReadRowText(ctx context.Context, row TableRow) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
