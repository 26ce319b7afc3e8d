package cmd

import (
	"strings"
	"testing"
)

func TestReadRows(t *testing.T) {
	input := "hello,hola\nbadline\nthanks,gracias\n"

	rows, skipped, err := readRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped row, got %d", skipped)
	}
	if rows[0].Front != "hello" || rows[0].Back != "hola" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Front != "thanks" || rows[1].Back != "gracias" {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestReadRowsExtraColumns(t *testing.T) {
	input := "word,translation,ignored-note\n"

	rows, skipped, err := readRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readRows: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", skipped)
	}
	if len(rows) != 1 || rows[0].Front != "word" || rows[0].Back != "translation" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestReadRowsEmpty(t *testing.T) {
	rows, skipped, err := readRows(strings.NewReader(""))
	if err != nil {
		t.Fatalf("readRows: %v", err)
	}
	if len(rows) != 0 || skipped != 0 {
		t.Errorf("expected nothing, got %d rows, %d skipped", len(rows), skipped)
	}
}
