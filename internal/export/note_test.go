package export

import (
	"os"
	"strings"
	"testing"

	"github.com/patrickprogramme/scribeur/internal/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, _, err := session.New(
		"https://www.tiktok.com/@someone/video/7312345678901234567",
		"[0:05] Hi there\n[1:10] Second line",
	)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	s.Edit(5, "bonjour à tous")
	return s
}

func TestNewNoteData(t *testing.T) {
	data := NewNoteData(newSession(t), "Ma super vidéo")

	if data.VideoID != "7312345678901234567" {
		t.Fatalf("VideoID = %q", data.VideoID)
	}
	if data.Title != "Ma super vidéo" {
		t.Fatalf("Title = %q", data.Title)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(data.Rows))
	}
	if data.Rows[0].Clock != "00:05" || data.Rows[0].Text != "bonjour à tous" {
		t.Fatalf("row 0 = %#v", data.Rows[0])
	}
	if !strings.Contains(data.Filename, "7312345678901234567") {
		t.Fatalf("Filename = %q; want id suffix", data.Filename)
	}
}

func TestWriteNote_MarkdownFromEmbeddedTemplate(t *testing.T) {
	r, err := DefaultRenderer()
	if err != nil {
		t.Fatalf("DefaultRenderer: %v", err)
	}

	dir := t.TempDir()
	path, err := r.WriteNote(dir, "md", NewNoteData(newSession(t), ""))
	if err != nil {
		t.Fatalf("WriteNote: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	out := string(b)
	for _, want := range []string{"00:05", "bonjour à tous", "01:10", "video_id: 7312345678901234567"} {
		if !strings.Contains(out, want) {
			t.Errorf("note does not contain %q:\n%s", want, out)
		}
	}

	if _, err := r.WriteNote(dir, "html", NoteData{Filename: "x"}); err == nil {
		t.Fatal("unknown format must fail")
	}
}
