package script

import (
	"reflect"
	"testing"

	"github.com/patrickprogramme/scribeur/internal/transcript"
	"github.com/patrickprogramme/scribeur/pkg/model"
)

func baseCues(starts ...float64) []transcript.Cue {
	out := make([]transcript.Cue, 0, len(starts))
	for _, s := range starts {
		out = append(out, transcript.Cue{Start: s})
	}
	return out
}

func TestAlign_JoinsSavedTextByTime(t *testing.T) {
	base := baseCues(1, 3, 5)
	saved := []model.ScriptEntry{
		{StartTime: 3, Text: "milieu"},
		{StartTime: 5, Text: "fin"},
	}

	got := Align(base, saved)
	want := []model.ScriptEntry{
		{StartTime: 1, Text: ""},
		{StartTime: 3, Text: "milieu"},
		{StartTime: 5, Text: "fin"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Align = %#v; want %#v", got, want)
	}
}

func TestAlign_OrphanedEntriesAreDropped(t *testing.T) {
	base := baseCues(1, 2)
	saved := []model.ScriptEntry{
		{StartTime: 99, Text: "orpheline"},
		{StartTime: 2, Text: "gardée"},
	}

	got := Align(base, saved)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	for _, e := range got {
		if e.Text == "orpheline" {
			t.Fatal("une entrée orpheline ne doit pas réapparaître")
		}
	}
}

func TestAlign_MillisecondKeySurvivesRounding(t *testing.T) {
	// deux représentations float du même instant doivent se joindre
	base := []transcript.Cue{{Start: 1.2340001}}
	saved := []model.ScriptEntry{{StartTime: 1.2339999, Text: "match"}}

	got := Align(base, saved)
	if got[0].Text != "match" {
		t.Fatalf("join by ms key failed: %#v", got)
	}
}

func TestAlign_Idempotent(t *testing.T) {
	base := baseCues(0, 1.5, 7)
	saved := []model.ScriptEntry{{StartTime: 1.5, Text: "x"}}

	first := Align(base, saved)
	second := Align(base, saved)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Align not idempotent: %#v vs %#v", first, second)
	}
}

func TestApply_UpdatesOnlyMatchingRow(t *testing.T) {
	entries := []model.ScriptEntry{
		{StartTime: 1, Text: "a"},
		{StartTime: 2, Text: "b"},
	}

	entries = Apply(entries, 2, "nouveau")
	if entries[0].Text != "a" || entries[1].Text != "nouveau" {
		t.Fatalf("Apply touched wrong rows: %#v", entries)
	}
}

func TestApply_MissingRowIsAppendedAndSorted(t *testing.T) {
	entries := []model.ScriptEntry{
		{StartTime: 1, Text: "a"},
		{StartTime: 5, Text: "c"},
	}

	entries = Apply(entries, 3, "b")
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	wantOrder := []float64{1, 3, 5}
	for i, e := range entries {
		if e.StartTime != wantOrder[i] {
			t.Fatalf("entries not re-sorted: %#v", entries)
		}
	}
}
