package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// ToSeconds convertit un timecode "H:MM:SS[.mmm]" ou "MM:SS[.mmm]" (fraction
// séparée par "." ou ",") en secondes fractionnaires.
// Politique best-effort : une entrée malformée retourne 0 plutôt que de faire
// échouer le parse du document entier. Entrée vide -> 0 immédiatement.
func ToSeconds(timecode string) float64 {
	s, err := toSeconds(timecode)
	if err != nil {
		return 0
	}
	return s
}

// toSeconds est la forme interne : elle distingue "malformé" de "zéro légitime"
// pour que les parseurs puissent compter les lignes écartées.
func toSeconds(timecode string) (float64, error) {
	timecode = strings.TrimSpace(timecode)
	if timecode == "" {
		return 0, nil
	}

	parts := strings.Split(timecode, ":")
	var seconds float64

	switch len(parts) {
	case 3: // H:MM:SS[.mmm]
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: heures invalides: %w", timecode, err)
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: minutes invalides: %w", timecode, err)
		}
		seconds += float64(h)*3600 + float64(m)*60
	case 2: // MM:SS[.mmm]
		m, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("timecode %q: minutes invalides: %w", timecode, err)
		}
		seconds += float64(m) * 60
	case 1:
		// secondes seules, peu probable mais toléré
	default:
		return 0, fmt.Errorf("timecode %q: trop de composantes", timecode)
	}

	// dernière composante : secondes entières + fraction éventuelle
	last := parts[len(parts)-1]
	secAndFrac := strings.FieldsFunc(last, func(r rune) bool {
		return r == '.' || r == ','
	})
	if len(secAndFrac) == 0 {
		return 0, fmt.Errorf("timecode %q: secondes manquantes", timecode)
	}

	whole, err := strconv.Atoi(secAndFrac[0])
	if err != nil {
		return 0, fmt.Errorf("timecode %q: secondes invalides: %w", timecode, err)
	}
	seconds += float64(whole)

	if len(secAndFrac) > 1 {
		// La fraction est complétée à droite avec des zéros jusqu'à 3 chiffres
		// PUIS tronquée à 3, avant division par 1000. L'ordre compte :
		// "5" -> "500" -> 0.5s, et non 0.005s.
		frac := secAndFrac[1]
		for len(frac) < 3 {
			frac += "0"
		}
		frac = frac[:3]
		ms, err := strconv.Atoi(frac)
		if err != nil {
			return 0, fmt.Errorf("timecode %q: fraction invalide: %w", timecode, err)
		}
		seconds += float64(ms) / 1000
	}

	return seconds, nil
}

// FormatClock formate un temps en secondes sous la forme "MM:SS" (arrondi
// à la seconde inférieure), pour l'affichage des lignes des deux tables.
func FormatClock(totalSeconds float64) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	m := int(totalSeconds) / 60
	s := int(totalSeconds) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
