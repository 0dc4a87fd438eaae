// Package resume defines the in-memory résumé record produced by the
// vax YAML parser and consumed by the man-page emitter.
package resume

import (
	"errors"
	"fmt"
)

// SchemaV1 is the only schema version the emitters understand.
const SchemaV1 = "v1"

var (
	ErrSchemaVersion = errors.New(`unsupported or missing schemaVersion (expected "v1")`)
	ErrMissingLabel  = errors.New("missing required field: label")
)

// Resume is the root record. Optional scalars are empty when absent.
type Resume struct {
	SchemaVersion string
	BuildDate     string
	Name          string
	Label         string
	Email         string
	URL           string
	LinkedIn      string
	Summary       string
	Work          []WorkEntry
	Skills        []SkillGroup

	// HasLabel records that a label key was read, even one with an empty
	// value. Validate accepts a non-empty Label without it.
	HasLabel bool
}

// WorkEntry is one element of the work sequence.
type WorkEntry struct {
	Company    string
	Position   string
	DateRange  string
	Location   string
	Highlights []string
}

// SkillGroup is one element of the skills sequence.
type SkillGroup struct {
	Group    string
	Keywords []string
}

// HasContact reports whether any of the contact fields is set.
func (r *Resume) HasContact() bool {
	return r.Email != "" || r.URL != "" || r.LinkedIn != ""
}

// Validate is the schema gate run once after parsing and before emitting.
func (r *Resume) Validate() error {
	if r.SchemaVersion != SchemaV1 {
		if r.SchemaVersion == "" {
			return ErrSchemaVersion
		}
		return fmt.Errorf("%w: got %q", ErrSchemaVersion, r.SchemaVersion)
	}
	if r.Label == "" && !r.HasLabel {
		return ErrMissingLabel
	}
	return nil
}

// AddWork appends an empty entry and returns its index.
func (r *Resume) AddWork() int {
	r.Work = Push(r.Work, WorkEntry{})
	return len(r.Work) - 1
}

// AddSkill appends an empty group and returns its index.
func (r *Resume) AddSkill() int {
	r.Skills = Push(r.Skills, SkillGroup{})
	return len(r.Skills) - 1
}

// Push appends v, growing the backing array by doubling from an initial
// capacity of 4.
func Push[T any](s []T, v T) []T {
	if len(s) == cap(s) {
		n := cap(s) * 2
		if n == 0 {
			n = 4
		}
		grown := make([]T, len(s), n)
		copy(grown, s)
		s = grown
	}
	return append(s, v)
}
