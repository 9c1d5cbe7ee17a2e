package schema

import (
	"bytes"
	"embed"
	"path"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	Customer       = "customer"
	Alert          = "alert"
	Recommendation = "recommendation"
	Segment        = "segment"
)

// ErrInvalidPayload marks a backend response that does not match its schema.
var ErrInvalidPayload = errors.New("invalid backend payload")

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator checks backend payloads at the client boundary.
type Validator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// New compiles every embedded schema so a broken schema fails at startup.
func New() (*Validator, error) {
	v := &Validator{compiled: make(map[string]*jsonschema.Schema)}

	for _, name := range []string{Customer, Alert, Recommendation, Segment} {
		if _, err := v.schemaFor(name); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Validate checks a single JSON document against the named schema.
func (v *Validator) Validate(name string, data []byte) error {
	s, err := v.schemaFor(name)
	if err != nil {
		return err
	}

	doc, err := decode(data)
	if err != nil {
		return errors.Wrapf(ErrInvalidPayload, "%s: %v", name, err)
	}

	if err := s.Validate(doc); err != nil {
		return errors.Wrapf(ErrInvalidPayload, "%s: %v", name, err)
	}

	return nil
}

// ValidateEach checks every element of a JSON array against the named schema.
// null is accepted as an empty list.
func (v *Validator) ValidateEach(name string, data []byte) error {
	s, err := v.schemaFor(name)
	if err != nil {
		return err
	}

	doc, err := decode(data)
	if err != nil {
		return errors.Wrapf(ErrInvalidPayload, "%s list: %v", name, err)
	}
	if doc == nil {
		return nil
	}

	items, ok := doc.([]any)
	if !ok {
		return errors.Wrapf(ErrInvalidPayload, "%s list: expected an array", name)
	}

	for i, item := range items {
		if err := s.Validate(item); err != nil {
			return errors.Wrapf(ErrInvalidPayload, "%s[%d]: %v", name, i, err)
		}
	}

	return nil
}

// decode keeps numbers as json.Number so the validator sees their exact text.
func decode(data []byte) (any, error) {
	var doc any
	dec := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (v *Validator) schemaFor(name string) (*jsonschema.Schema, error) {
	v.mu.RLock()
	s, ok := v.compiled[name]
	v.mu.RUnlock()
	if ok {
		return s, nil
	}

	file := name + ".json"
	data, err := schemaFS.ReadFile(path.Join("schemas", file))
	if err != nil {
		return nil, errors.Wrapf(err, "schema: unknown schema %s", name)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(file, bytes.NewReader(data)); err != nil {
		return nil, errors.Wrapf(err, "schema: load %s", name)
	}

	compiled, err := compiler.Compile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "schema: compile %s", name)
	}

	v.mu.Lock()
	v.compiled[name] = compiled
	v.mu.Unlock()

	return compiled, nil
}
