// Package video dérive des informations d'affichage depuis l'URL de
// référence. Collaboration à sens unique : on extrait un identifiant et un
// intitulé, on ne reçoit jamais rien du lecteur vidéo.
package video

import (
	"net/url"
	"regexp"
	"strings"
)

// reLongDigits : un segment de chemin entièrement numérique d'au moins 18
// chiffres, la forme habituelle d'un id de vidéo dans ces URLs.
var reLongDigits = regexp.MustCompile(`^\d{18,}$`)

const titleMaxLen = 25

// ExtractID extrait, en best-effort, l'identifiant vidéo d'une URL :
// le segment de chemin qui suit immédiatement un segment littéral "video",
// sinon le premier segment long entièrement numérique. Chaîne vide si rien
// ne ressemble à un id — jamais d'erreur, l'id ne sert qu'à l'affichage.
func ExtractID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return ""
	}

	segs := pathSegments(u.Path)
	for i, seg := range segs {
		if seg == "video" && i+1 < len(segs) {
			// retirer une éventuelle query collée au segment
			id, _, _ := strings.Cut(segs[i+1], "?")
			return id
		}
	}
	for _, seg := range segs {
		if reLongDigits.MatchString(seg) {
			return seg
		}
	}
	return ""
}

// Title dérive un intitulé court pour la liste d'historique :
// "Video ...XXXXXX" (6 derniers chiffres) si un id long est présent, sinon
// le dernier segment significatif du chemin ou l'hôte, raccourci à 25
// caractères. URL non parsable -> le texte brut tronqué.
func Title(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		s := rawURL
		if s == "" {
			s = "entrée sans titre"
		}
		if len(s) > titleMaxLen {
			s = s[:titleMaxLen]
		}
		return s + "..."
	}

	segs := pathSegments(u.Path)
	for _, seg := range segs {
		if reLongDigits.MatchString(seg) {
			return "Video ..." + seg[len(seg)-6:]
		}
	}

	title := u.Host
	if len(segs) > 0 {
		title = segs[len(segs)-1]
	}
	if len(title) > titleMaxLen {
		title = title[:titleMaxLen-3] + "..."
	}
	return title
}

func pathSegments(p string) []string {
	var out []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
