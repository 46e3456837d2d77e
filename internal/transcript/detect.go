package transcript

import "strings"

// reBracketPrefix ne sert qu'à la détection : un timecode crochet en tête de ligne.
var reBracketPrefix = reBracketLine

// fallbackMinLen : en dessous de cette longueur on ne tente même pas le
// parseur range en dernier recours.
const fallbackMinLen = 10

// Parse classe le texte collé dans l'une des deux notations supportées et
// délègue au parseur correspondant. Ordre de détection (premier match gagne) :
//  1. une ligne contient "-->"            -> notation range
//  2. une ligne commence par "[M:SS]"     -> notation crochet
//  3. texte de plus de 10 caractères      -> tentative range en best-effort
//  4. sinon                               -> résultat vide
//
// C'est une heuristique, pas une grammaire : une entrée ambiguë dégrade en
// résultat vide, que l'appelant doit traiter comme "non parsable".
func Parse(raw string) Result {
	raw = strings.TrimSpace(raw)
	lines := splitLines(raw)
	if len(lines) == 0 {
		return Result{Format: FormatUnknown}
	}

	for _, line := range lines {
		if strings.Contains(line, "-->") {
			cues, skipped := parseRange(raw)
			return Result{Format: FormatRange, Cues: cues, Skipped: skipped}
		}
	}

	for _, line := range lines {
		if reBracketPrefix.MatchString(line) {
			cues, skipped := parseBracket(raw)
			return Result{Format: FormatBracket, Cues: cues, Skipped: skipped}
		}
	}

	// Aucune notation reconnue : on tente quand même la notation range si le
	// texte a une taille plausible. Comportement hérité, conservé tel quel.
	if len(raw) > fallbackMinLen {
		cues, skipped := parseRange(raw)
		return Result{Format: FormatRange, Cues: cues, Skipped: skipped}
	}
	return Result{Format: FormatUnknown}
}
