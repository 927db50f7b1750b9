// Package mock provides test doubles for sectiongrid interfaces.
package mock

import "github.com/fwojciec/sectiongrid"

// Compile-time interface verification.
var (
	_ sectiongrid.SectionLoader  = (*SectionLoader)(nil)
	_ sectiongrid.SelectionSaver = (*SelectionSaver)(nil)
)

// SectionLoader is a mock implementation of sectiongrid.SectionLoader.
type SectionLoader struct {
	LoadFn func(path string) ([]sectiongrid.Section, error)
}

func (l *SectionLoader) Load(path string) ([]sectiongrid.Section, error) {
	return l.LoadFn(path)
}

// SelectionSaver is a mock implementation of sectiongrid.SelectionSaver.
type SelectionSaver struct {
	SaveFn func(path string, rec sectiongrid.SelectionRecord) error
}

func (s *SelectionSaver) Save(path string, rec sectiongrid.SelectionRecord) error {
	return s.SaveFn(path, rec)
}
