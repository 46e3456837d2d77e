// Package fetch fournit un utilitaire HTTP borné (timeout + taille max)
// pour les requêtes JSON best-effort du programme.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultMaxBytes  = 1_000_000
	DefaultUserAgent = "scribeur/1.0"
)

// ErrTooLarge : la réponse dépasse la taille maximale autorisée.
var ErrTooLarge = errors.New("response body too large")

// countingReader compte les octets lus, pour détecter un dépassement de
// maxBytes même quand le décodeur consomme le flux.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.n += int64(n)
	}
	return n, err
}

// JSONInto télécharge rawURL et décode le JSON dans dst (pointeur).
// timeout/maxBytes <= 0 -> valeurs par défaut. ctx peut être nil.
func JSONInto(ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64, dst any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return fmt.Errorf("fetch json: invalid url %q: %w", rawURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("fetch json: new request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch json: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch json: unexpected http status %s", resp.Status)
	}
	if resp.ContentLength > 0 && resp.ContentLength > maxBytes {
		return fmt.Errorf("fetch json: content-length %d exceeds limit %d", resp.ContentLength, maxBytes)
	}

	// +1 pour détecter le dépassement : si on lit maxBytes+1 octets, c'est trop
	cr := &countingReader{r: io.LimitReader(resp.Body, maxBytes+1)}
	if err := json.NewDecoder(cr).Decode(dst); err != nil {
		return fmt.Errorf("fetch json: decode: %w", err)
	}
	if cr.n > maxBytes {
		return ErrTooLarge
	}
	return nil
}

// JSON : variante générique typée de JSONInto.
func JSON[T any](ctx context.Context, rawURL string, timeout time.Duration, maxBytes int64) (T, error) {
	var v T
	if err := JSONInto(ctx, rawURL, timeout, maxBytes, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
