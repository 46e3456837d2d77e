package model

import "math"

// ScriptEntry est une ligne de guion : le texte saisi par l'utilisateur,
// rattaché au temps de départ (en secondes) d'une ligne de transcription.
// Les tags JSON reprennent exactement le schéma du blob persisté historique
// ([{startTime, text}]) pour rester lisible par les anciens exports.
type ScriptEntry struct {
	StartTime float64 `json:"startTime"`
	Text      string  `json:"text"`
}

// StartMs retourne la clé de jointure en millisecondes entières.
// On ne compare jamais deux float64 directement : un re-parse du même texte
// peut produire un arrondi différent, la clé entière reste stable.
func (e ScriptEntry) StartMs() int64 {
	return int64(math.Round(e.StartTime * 1000))
}

// Session est une entrée d'historique persistée : l'URL de référence, le
// texte collé tel quel (jamais modifié après création, seulement remplacé),
// et le guion édité. Timestamp est en ISO-8601 (RFC3339).
type Session struct {
	ID           string        `json:"id"`
	URL          string        `json:"url"`
	OriginalText string        `json:"originalText"`
	Script       []ScriptEntry `json:"script"`
	Timestamp    string        `json:"timestamp"`
}
