// Package jsonl provides JSONL file handling for sections and selection records.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/sectiongrid"
)

// Compile-time interface verification.
var _ sectiongrid.SectionLoader = (*Loader)(nil)

// Loader loads sections from JSONL files, one section per line.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// maxLineSize is the maximum size for a single JSONL line (4MB).
const maxLineSize = 4 * 1024 * 1024

// Load reads a JSONL file and returns its sections in file order.
func (l *Loader) Load(path string) ([]sectiongrid.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sections []sectiongrid.Section
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var s sectiongrid.Section
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		sections = append(sections, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}
