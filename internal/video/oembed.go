package video

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/patrickprogramme/scribeur/internal/fetch"
)

const oembedEndpoint = "https://www.tiktok.com/oembed?url="

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// LookupTitle interroge l'endpoint oEmbed pour récupérer le titre de la
// vidéo. Purement décoratif : tout échec (réseau, quota, URL inconnue) est
// loggé en debug et retourne une chaîne vide.
func LookupTitle(ctx context.Context, rawURL string, log *logrus.Logger) string {
	if log == nil {
		log = logrus.StandardLogger()
	}

	endpoint := oembedEndpoint + url.QueryEscape(rawURL)
	resp, err := fetch.JSON[oembedResponse](ctx, endpoint, 5*time.Second, 0)
	if err != nil {
		log.WithError(err).Debug("oembed indisponible")
		return ""
	}
	return strings.TrimSpace(resp.Title)
}
