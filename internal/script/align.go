// Package script fait la jointure entre les temps issus de la transcription
// et le guion précédemment sauvegardé, et applique les éditions ligne à ligne.
package script

import (
	"sort"

	"github.com/patrickprogramme/scribeur/internal/transcript"
	"github.com/patrickprogramme/scribeur/pkg/model"
)

// Align produit une ligne de guion par cue de base, dans l'ordre des cues.
// Le texte vient du guion sauvegardé quand une entrée porte le même temps de
// départ (jointure par clé millisecondes entières), sinon chaîne vide.
// Une entrée sauvegardée dont le temps ne correspond à aucun cue est orpheline
// et disparaît silencieusement du résultat.
// Align est pur : mêmes entrées, même sortie.
func Align(base []transcript.Cue, saved []model.ScriptEntry) []model.ScriptEntry {
	lookup := make(map[int64]string, len(saved))
	for _, e := range saved {
		lookup[e.StartMs()] = e.Text
	}

	out := make([]model.ScriptEntry, 0, len(base))
	for _, c := range base {
		entry := model.ScriptEntry{StartTime: c.Start}
		if text, ok := lookup[entry.StartMs()]; ok {
			entry.Text = text
		}
		out = append(out, entry)
	}
	return out
}

// Apply remplace le texte de la ligne dont le temps de départ correspond à
// start. Si aucune ligne ne correspond (ne devrait pas arriver en usage
// normal), l'entrée est ajoutée puis la liste retriée par temps croissant.
func Apply(entries []model.ScriptEntry, start float64, text string) []model.ScriptEntry {
	key := model.ScriptEntry{StartTime: start}.StartMs()
	for i := range entries {
		if entries[i].StartMs() == key {
			entries[i].Text = text
			return entries
		}
	}

	entries = append(entries, model.ScriptEntry{StartTime: start, Text: text})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime < entries[j].StartTime
	})
	return entries
}
