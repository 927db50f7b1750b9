package jsonl

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/sectiongrid"
)

// Compile-time interface verification.
var _ sectiongrid.SelectionSaver = (*Saver)(nil)

// Saver appends SelectionRecord entries to JSONL files.
type Saver struct{}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{}
}

// Save appends rec to a JSONL file, creating parent directories if needed.
func (s *Saver) Save(path string, rec sectiongrid.SelectionRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if rec.Items == nil {
		rec.Items = []sectiongrid.Item{}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	if _, err := f.WriteString("\n"); err != nil {
		return err
	}

	return nil
}
