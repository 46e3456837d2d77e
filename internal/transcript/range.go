package transcript

import (
	"regexp"
	"sort"
	"strings"
)

// reRangeBoundary reconnaît une ligne frontière "début --> fin".
// Heures sur 1 ou 2 chiffres, fraction optionnelle avec "." ou ",".
var reRangeBoundary = regexp.MustCompile(
	`(\d{1,2}:\d{2}:\d{2}(?:[.,]\d{1,3})?)\s*-->\s*(\d{1,2}:\d{2}:\d{2}(?:[.,]\d{1,3})?)`)

// parseRange lit la notation à deux timecodes par cue : une ligne frontière
// ouvre un cue, les lignes non vides suivantes forment son texte (jointes par
// un espace, chaque ligne trimée). Un cue n'est retenu que si son texte trimé
// est non vide. Le résultat est retrié par Start croissant : l'entrée n'est
// pas supposée ordonnée.
func parseRange(raw string) ([]Cue, int) {
	lines := splitLines(raw)

	var cues []Cue
	var skipped int
	var current *Cue

	flush := func() {
		if current != nil && strings.TrimSpace(current.Text) != "" {
			cues = append(cues, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if m := reRangeBoundary.FindStringSubmatch(line); m != nil {
			flush()
			current = &Cue{
				Start:  ToSeconds(m[1]),
				End:    ToSeconds(m[2]),
				HasEnd: true,
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// ligne d'en-tête structurelle : ignorée, jamais du texte de cue
		if strings.HasPrefix(line, "WEBVTT") {
			skipped++
			continue
		}
		if current == nil {
			// texte orphelin avant la première frontière (numéros de cue SRT,
			// métadonnées...) : écarté
			skipped++
			continue
		}
		if current.Text != "" {
			current.Text += " "
		}
		current.Text += trimmed
	}
	flush()

	sort.SliceStable(cues, func(i, j int) bool {
		return cues[i].Start < cues[j].Start
	})
	return cues, skipped
}

// splitLines découpe sur \r et \n et écarte les lignes entièrement vides.
func splitLines(raw string) []string {
	all := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	out := all[:0]
	for _, l := range all {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
