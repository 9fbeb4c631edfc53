package config

import (
	"strconv"

	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Explicit tags select a kind when the plain YAML type is ambiguous.
const (
	tagString = "!string"
	tagRaw    = "!raw"
)

// decodeVariables turns a variables mapping into typed values.
// Names keep their case. An absent section yields an empty map.
func decodeVariables(node *yaml.Node) (map[string]domain.Value, error) {
	out := make(map[string]domain.Value)
	if node == nil || node.Kind == 0 {
		return out, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrInvalidValue, "line", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		value, err := decodeValue(node.Content[i+1])
		if err != nil {
			return nil, zerr.With(err, "variable", name)
		}
		out[name] = value
	}
	return out, nil
}

// decodeValue maps a YAML node onto a domain.Value.
// Plain strings become raw expressions so colors and lengths reach the compiler
// untouched; the !string tag forces a quoted string.
func decodeValue(node *yaml.Node) (domain.Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeValue(node.Alias)

	case yaml.SequenceNode:
		items := make([]domain.Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := decodeValue(child)
			if err != nil {
				return domain.Value{}, err
			}
			items = append(items, item)
		}
		return domain.List(items...), nil

	case yaml.MappingNode:
		entries := make([]domain.MapEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			item, err := decodeValue(node.Content[i+1])
			if err != nil {
				return domain.Value{}, err
			}
			entries = append(entries, domain.MapEntry{Key: node.Content[i].Value, Value: item})
		}
		return domain.Map(entries...), nil

	case yaml.ScalarNode:
		return decodeScalar(node)

	default:
		return domain.Value{}, zerr.With(domain.ErrInvalidValue, "line", node.Line)
	}
}

func decodeScalar(node *yaml.Node) (domain.Value, error) {
	switch node.Tag {
	case tagString:
		return domain.String(node.Value), nil
	case tagRaw:
		return domain.Raw(node.Value), nil
	case "!!null":
		return domain.Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return domain.Value{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidValue.Error()), "line", node.Line)
		}
		return domain.Bool(b), nil
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			// Hex, octal and the like are passed through as written.
			return domain.Raw(node.Value), nil //nolint:nilerr // Not a decimal number
		}
		return domain.Number(n), nil
	default:
		return domain.Raw(node.Value), nil
	}
}
