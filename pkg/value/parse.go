package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a single JSON document into a Value.
// Numbers are decoded exactly through json.Number before conversion.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, errors.Join(ErrInvalidDocument, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidDocument)
	}

	v, err := From(raw)
	if err != nil {
		return Value{}, errors.Join(ErrInvalidDocument, err)
	}
	return v, nil
}

// ParseYAML decodes a single YAML document into a Value.
// An empty document yields Absent, an explicit null yields Null.
func ParseYAML(data []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Value{}, errors.Join(ErrInvalidDocument, err)
	}
	if node.Kind == 0 {
		return Absent(), nil
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return Value{}, errors.Join(ErrInvalidDocument, err)
	}

	v, err := From(raw)
	if err != nil {
		return Value{}, errors.Join(ErrInvalidDocument, err)
	}
	return v, nil
}
