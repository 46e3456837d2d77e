package fsutil

import (
	"regexp"
	"strings"
	"unicode"
)

// longueur maximale d'un nom de fichier généré
const maxFilenameLen = 200

// invalidFileRunes : caractères interdits dans un nom de fichier
// (\x00-\x1F = caractères de contrôle).
var invalidFileRunes = regexp.MustCompile(`[<>"/\\|?*\x00-\x1F]`)

var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename transforme une chaîne arbitraire (titre, URL...) en nom
// de fichier sûr : ":" devient "-", les caractères interdits deviennent des
// espaces, les espaces sont réduits, les points terminaux supprimés, la
// longueur bornée. Chaîne vide -> "untitled".
func SanitizeFilename(name string) string {
	if name == "" {
		return "untitled"
	}

	name = strings.ReplaceAll(name, ":", "-")
	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = strings.TrimSpace(clean)
	clean = multiSpace.ReplaceAllString(clean, " ")
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "untitled"
	}
	if len(clean) > maxFilenameLen {
		clean = clean[:maxFilenameLen]
	}
	return CapitalizeFirst(clean)
}

// CapitalizeFirst met la première rune en majuscule, sans toucher au reste.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
