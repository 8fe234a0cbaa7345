// File: yaml.go
// Title: YAML Converter
// Description: YAML to Value and back through the yaml.v3 node API, which
//              keeps mapping order and resolves tags for scalars.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package convert

import (
	"bytes"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/msto63/paml/foundation/paml/printer"
	"github.com/msto63/paml/foundation/paml/value"
)

// FromYAML converts the first document of a YAML stream. Aliases are
// expanded; mapping keys must be scalars and unique.
func FromYAML(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return value.Value{}, conversionError("invalid YAML: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return value.Value{}, conversionError("YAML input contains no document")
	}
	return fromYAMLNode(doc.Content[0], 0)
}

func fromYAMLNode(n *yaml.Node, depth int) (value.Value, error) {
	if depth > maxDepth {
		return value.Value{}, tooDeep(FormatYAML)
	}

	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias, depth+1)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		items := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAMLNode(c, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.List(items...), nil
	case yaml.MappingNode:
		b := value.NewMapBuilder()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return value.Value{}, conversionError("line %d: YAML mapping key must be a scalar", k.Line)
			}
			item, err := fromYAMLNode(v, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			if err := b.Add(k.Value, item); err != nil {
				return value.Value{}, duplicateKey(FormatYAML, err).WithDetail("line", k.Line)
			}
		}
		return b.Build(), nil
	default:
		return value.Value{}, conversionError("line %d: unsupported YAML node", n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, conversionError("line %d: %v", n.Line, err)
		}
		return value.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return value.Int(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, conversionError("line %d: %v", n.Line, err)
		}
		return value.Number(f, true), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, conversionError("line %d: %v", n.Line, err)
		}
		return value.Float(f), nil
	default:
		// strings, timestamps and binary keep their source text
		return value.String(n.Value), nil
	}
}

// ToYAML writes v as a YAML document with two-space indentation
func ToYAML(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLNode(v)); err != nil {
		return nil, conversionError("write YAML: %v", err)
	}
	if err := enc.Close(); err != nil {
		return nil, conversionError("write YAML: %v", err)
	}
	return buf.Bytes(), nil
}

func toYAMLNode(v value.Value) *yaml.Node {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return yamlScalar("!!bool", strconv.FormatBool(b))
	case value.KindNumber:
		f, _ := v.AsFloat()
		switch {
		case math.IsNaN(f):
			return yamlScalar("!!float", ".nan")
		case math.IsInf(f, 1):
			return yamlScalar("!!float", ".inf")
		case math.IsInf(f, -1):
			return yamlScalar("!!float", "-.inf")
		case v.IsIntegral():
			return yamlScalar("!!int", printer.FormatNumber(v))
		}
		return yamlScalar("!!float", printer.FormatNumber(v))
	case value.KindString:
		s, _ := v.AsString()
		return yamlScalar("!!str", s)
	case value.KindList:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			n.Content = append(n.Content, toYAMLNode(item))
		}
		return n
	case value.KindMap:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v.Entries() {
			n.Content = append(n.Content, yamlScalar("!!str", e.Key), toYAMLNode(e.Value))
		}
		return n
	default:
		return yamlScalar("!!null", "null")
	}
}

func yamlScalar(tag, text string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}
