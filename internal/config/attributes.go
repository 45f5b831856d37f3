package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reanimator/analog-clock/internal/clockface"
)

//go:embed defaults.yaml
var defaultAttributesYAML []byte

// Attributes are the declared settings a clock widget is created with.
type Attributes struct {
	HandsStyle      int    `yaml:"handsStyle"`
	SecondHandColor string `yaml:"secondHandColor"`
}

// DefaultAttributes returns the attributes bundled with the application
func DefaultAttributes() Attributes {
	attrs, err := decodeAttributes(defaultAttributesYAML, Attributes{HandsStyle: clockface.DefaultHandStyleFactor})
	if err != nil {
		panic(fmt.Sprintf("bundled defaults.yaml is invalid: %v", err))
	}
	return attrs
}

// ParseAttributes decodes a YAML attributes document over the bundled
// defaults. Unknown keys are rejected.
func ParseAttributes(data []byte) (Attributes, error) {
	return decodeAttributes(data, DefaultAttributes())
}

// LoadAttributes reads a YAML attributes file
func LoadAttributes(path string) (Attributes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attributes{}, fmt.Errorf("read attributes: %w", err)
	}
	return ParseAttributes(data)
}

// Options converts the attributes into renderer options
func (a Attributes) Options() clockface.Options {
	return clockface.Options{
		HandStyleFactor:     a.HandsStyle,
		SecondHandColorName: a.SecondHandColor,
	}
}

// WithSettings overrides the declared attributes with choices the user saved
// in an earlier session.
func (a Attributes) WithSettings(s *Settings) Attributes {
	if color := s.GetSecondHandColor(); color != "" {
		a.SecondHandColor = color
	}
	if t, ok := s.GetHandsThickness(); ok {
		a.HandsStyle = t.Factor()
	}
	return a
}

func decodeAttributes(data []byte, base Attributes) (Attributes, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	attrs := base
	if err := dec.Decode(&attrs); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return Attributes{}, fmt.Errorf("parse attributes: %w", err)
	}
	return attrs, nil
}
