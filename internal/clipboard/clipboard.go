// Package clipboard isole la dépendance au presse-papier système.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll écrit text dans le presse-papier. Refuse une chaîne vide.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}
