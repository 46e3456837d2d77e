package transcript

// Cue représente une unité de transcription horodatée : temps de départ,
// temps de fin optionnel (selon la notation d'origine) et texte.
type Cue struct {
	Start  float64 // secondes depuis le début de la vidéo
	End    float64 // secondes ; valide uniquement si HasEnd
	HasEnd bool    // la notation crochet ne fournit pas de temps de fin
	Text   string
}

// Format identifie la notation détectée dans le texte collé.
type Format string

const (
	// FormatRange : deux timecodes par cue séparés par "-->" (type VTT/SRT).
	FormatRange Format = "range"
	// FormatBracket : un timecode par ligne, "[MM:SS] texte".
	FormatBracket Format = "bracket"
	// FormatUnknown : aucune notation reconnue.
	FormatUnknown Format = "unknown"
)

// Result est le produit d'un parse : les cues retenus (triés par Start pour
// la notation range), la notation retenue, et le nombre de lignes écartées.
// Skipped permet de distinguer "tout a été lu" de "on a dégradé en silence".
type Result struct {
	Format  Format
	Cues    []Cue
	Skipped int
}
