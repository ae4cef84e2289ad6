// Package export writes a generated round as a versioned JSON document
// and checks documents against the bundled JSON Schema.
package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/round"
)

// Version is the document format version.
const Version = 1

const schemaURL = "https://mamchoi.local/schema/round.schema.json"

//go:embed schema/round.schema.json
var schemaJSON []byte

// Document is the exported form of a round.
type Document struct {
	Version     int                 `json:"version"`
	Mode        question.Mode       `json:"mode"`
	Difficulty  question.Difficulty `json:"difficulty"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Seed        uint64              `json:"seed,omitempty"`
	Requested   int                 `json:"requested,omitempty"`
	Questions   question.List       `json:"questions"`
	IconsUsed   []string            `json:"iconsUsed"`
}

// NewDocument wraps a generated round.
func NewDocument(req round.Request, res round.Result, at time.Time) *Document {
	return &Document{
		Version:     Version,
		Mode:        req.Mode,
		Difficulty:  req.Difficulty,
		GeneratedAt: at.UTC(),
		Seed:        res.Seed,
		Requested:   res.Requested,
		Questions:   question.List(res.Questions),
		IconsUsed:   res.IconsUsed,
	}
}

// Marshal encodes doc as indented JSON and validates the result.
func Marshal(doc *Document) ([]byte, error) {
	d := *doc
	if d.Questions == nil {
		d.Questions = question.List{}
	}
	if d.IconsUsed == nil {
		d.IconsUsed = []string{}
	}
	raw, err := json.MarshalIndent(&d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	if err := Validate(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Unmarshal validates raw and decodes it, restoring each question variant.
func Unmarshal(raw []byte) (*Document, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// Validate checks raw against the document schema.
func Validate(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
})
