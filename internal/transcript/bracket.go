package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// reBracketLine reconnaît "[M:SS] texte" ou "[MM:SS] texte", ancré en début
// de ligne (espaces de tête tolérés).
var reBracketLine = regexp.MustCompile(`^\s*\[(\d{1,2}):(\d{2})\]\s*(.*)`)

// parseBracket lit la notation à un timecode par ligne. Pas de temps de fin
// dans cette notation, et pas de fraction : Start = minutes*60 + secondes.
// Les lignes qui ne matchent pas sont écartées sans erreur ; l'ordre de
// sortie est l'ordre des lignes (la monotonie est supposée, pas vérifiée).
func parseBracket(raw string) ([]Cue, int) {
	lines := splitLines(raw)

	var cues []Cue
	var skipped int

	for _, line := range lines {
		m := reBracketLine.FindStringSubmatch(line)
		if m == nil {
			skipped++
			continue
		}
		minutes, errM := strconv.Atoi(m[1])
		seconds, errS := strconv.Atoi(m[2])
		text := strings.TrimSpace(m[3])
		if errM != nil || errS != nil || text == "" {
			skipped++
			continue
		}
		cues = append(cues, Cue{
			Start: float64(minutes*60 + seconds),
			Text:  text,
		})
	}
	return cues, skipped
}
