// Package jsonresume reads JSON Resume documents (JSON or YAML) and derives
// the reduced résumé and contact records from them.
package jsonresume

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"
)

// MaxInputSize limits how much of a resume file is read.
const MaxInputSize = 1 << 20

// Errors returned by Load.
var (
	ErrEmpty         = errors.New("resume input is empty")
	ErrInputTooLarge = errors.New("resume input exceeds maximum size")
	ErrSchema        = errors.New("resume does not match schema")
)

//go:embed resume.schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Document is the part of a JSON Resume that the builders read.
type Document struct {
	Basics Basics  `yaml:"basics"`
	Work   []Work  `yaml:"work"`
	Skills []Skill `yaml:"skills"`
}

// Basics holds the identity and contact fields of a resume.
type Basics struct {
	Name     string    `yaml:"name"`
	Label    string    `yaml:"label"`
	Email    string    `yaml:"email"`
	URL      string    `yaml:"url"`
	Summary  string    `yaml:"summary"`
	Profiles []Profile `yaml:"profiles"`
}

// Profile is one social network account listed under basics.
type Profile struct {
	Network  string `yaml:"network"`
	Username string `yaml:"username"`
	URL      string `yaml:"url"`
}

// Work is one position. Either Name or Company holds the employer.
type Work struct {
	Name       string   `yaml:"name"`
	Company    string   `yaml:"company"`
	Position   string   `yaml:"position"`
	Location   string   `yaml:"location"`
	StartDate  string   `yaml:"startDate"`
	EndDate    string   `yaml:"endDate"`
	Highlights []string `yaml:"highlights"`
}

// Skill is one group of keywords, titled by Name or Group.
type Skill struct {
	Name     string   `yaml:"name"`
	Group    string   `yaml:"group"`
	Keywords []string `yaml:"keywords"`
}

// Load reads a JSON or YAML resume, checks it against the embedded schema
// and decodes it.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, MaxInputSize)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmpty
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return &doc, nil
}

func validate(raw any) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
