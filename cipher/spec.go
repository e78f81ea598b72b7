package cipher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	polycipher "github.com/BackendStack21/polycipher-go"
	"gopkg.in/yaml.v3"
)

// LoadSpec reads a YAML or JSON spec file.
func LoadSpec(path string) (polycipher.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return polycipher.Spec{}, fmt.Errorf("load spec: %w", err)
	}
	spec, err := ParseSpec(data)
	if err != nil {
		return polycipher.Spec{}, fmt.Errorf("load spec %s: %w", path, err)
	}
	return spec, nil
}

// ParseSpec decodes a YAML document, or JSON, into a Spec. Unknown fields are
// rejected.
func ParseSpec(data []byte) (polycipher.Spec, error) {
	var spec polycipher.Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return polycipher.Spec{}, errors.New("empty spec")
		}
		return polycipher.Spec{}, err
	}
	return spec, nil
}
