package services

import (
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeScenario reads one YAML document holding a raw scenario. JSON is
// accepted too since YAML is a superset of it.
func DecodeScenario(r io.Reader) (RawInput, error) {
	var raw RawInput
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return RawInput{}, fmt.Errorf("decode scenario: document is empty: %w", domain.ErrInputShape)
		}
		return RawInput{}, fmt.Errorf("decode scenario: %v: %w", err, domain.ErrInputShape)
	}
	return raw, nil
}

// LoadScenario decodes and normalizes a scenario document.
func LoadScenario(r io.Reader) (domain.Input, error) {
	raw, err := DecodeScenario(r)
	if err != nil {
		return domain.Input{}, err
	}
	return NormalizeInput(raw)
}
