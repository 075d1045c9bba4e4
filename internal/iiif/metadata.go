package iiif

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// LocalizedValue is one language-tagged variant of a metadata value.
type LocalizedValue struct {
	Value    string `json:"value" yaml:"value"`
	Language string `json:"language" yaml:"language"`
}

type valueKind int

const (
	kindSingle valueKind = iota
	kindMany
	kindLocalized
)

// Value is a metadata value in one of three shapes: a single string, an
// ordered list of strings, or an ordered list of language-tagged strings.
// It serializes untagged, as the bare string or array.
type Value struct {
	kind      valueKind
	single    string
	many      []string
	localized []LocalizedValue
}

func Single(value string) Value {
	return Value{kind: kindSingle, single: value}
}

func List(values ...string) Value {
	return Value{kind: kindMany, many: values}
}

func Localized(values ...LocalizedValue) Value {
	return Value{kind: kindLocalized, localized: values}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindMany:
		return json.Marshal(v.many)
	case kindLocalized:
		return json.Marshal(v.localized)
	default:
		return json.Marshal(v.single)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = Single(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*v = List(many...)
		return nil
	}
	var localized []LocalizedValue
	if err := json.Unmarshal(data, &localized); err == nil {
		*v = Localized(localized...)
		return nil
	}
	return fmt.Errorf("metadata value is neither a string, a string list, nor a localized list: %s", data)
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*v = Single(single)
		return nil
	case yaml.SequenceNode:
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
			var localized []LocalizedValue
			if err := node.Decode(&localized); err != nil {
				return err
			}
			*v = Localized(localized...)
			return nil
		}
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*v = List(many...)
		return nil
	default:
		return fmt.Errorf("metadata value must be a string or a list, got yaml node kind %d", node.Kind)
	}
}

// Metadata is one label/value entry of a manifest's metadata list. Entry
// order is preserved end to end.
type Metadata struct {
	Label string `json:"label" yaml:"label"`
	Value Value  `json:"value" yaml:"value"`
}

func NewMetadata(label string, value Value) Metadata {
	return Metadata{Label: label, Value: value}
}

// KeyValue builds a single-string metadata entry.
func KeyValue(label, value string) Metadata {
	return Metadata{Label: label, Value: Single(value)}
}
