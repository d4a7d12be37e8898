// Package hint decodes and validates the external oracle's answer about which
// element to target.
package hint

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidHint is returned when a hint is not valid JSON or breaks the schema.
var ErrInvalidHint = errors.New("invalid hint")

const schemaName = "hint.schema.json"

//go:embed schema.json
var schemaSource string

// Decoder validates raw hints against the hint schema. It is safe for concurrent use.
type Decoder struct {
	schema *jsonschema.Schema
}

// NewDecoder compiles the embedded hint schema.
func NewDecoder() (*Decoder, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaName, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add hint schema: %w", err)
	}
	schema, err := c.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compile hint schema: %w", err)
	}
	return &Decoder{schema: schema}, nil
}

// Decode validates raw and decodes it into a Hint. Empty input and JSON null
// decode to the zero Hint.
func (d *Decoder) Decode(raw []byte) (domain.Hint, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.Hint{}, nil
	}

	var doc any
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return domain.Hint{}, fmt.Errorf("%w: %w", ErrInvalidHint, err)
	}
	return d.DecodeValue(doc)
}

// DecodeValue validates an already unmarshalled JSON value and decodes it.
func (d *Decoder) DecodeValue(doc any) (domain.Hint, error) {
	if doc == nil {
		return domain.Hint{}, nil
	}
	if err := d.schema.Validate(doc); err != nil {
		return domain.Hint{}, fmt.Errorf("%w: %w", ErrInvalidHint, err)
	}

	var h domain.Hint
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "mapstructure",
		Result:     &h,
		ZeroFields: true,
	})
	if err != nil {
		return domain.Hint{}, fmt.Errorf("create hint decoder: %w", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return domain.Hint{}, fmt.Errorf("%w: %w", ErrInvalidHint, err)
	}
	return h, nil
}
