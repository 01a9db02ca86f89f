package protocol

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const schemaBaseURL = "https://photon-ca.local/schemas/"

var schemaFiles = map[string]string{
	TypeHello:  "hello.schema.json",
	TypeInject: "inject.schema.json",
	TypeStep:   "step.schema.json",
	TypeReset:  "reset.schema.json",
	TypeGet:    "get.schema.json",
	TypeState:  "state.schema.json",
}

// Validator checks raw messages against the bundled JSON schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles every bundled schema.
func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(schemaFiles))}
	for typ, name := range schemaFiles {
		raw, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, err
		}
		s, err := jsonschema.CompileString(schemaBaseURL+name, string(raw))
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", name, err)
		}
		v.schemas[typ] = s
	}
	return v, nil
}

// Validate checks msg against the schema registered for typ.
func (v *Validator) Validate(typ string, msg []byte) error {
	s, ok := v.schemas[typ]
	if !ok {
		return fmt.Errorf("no schema for message type %q", typ)
	}
	var doc any
	if err := json.Unmarshal(msg, &doc); err != nil {
		return err
	}
	return s.Validate(doc)
}
