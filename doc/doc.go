// Package doc provides the value model for corpus documents.
//
// Hand-authored YAML documents are loaded into an insertion-ordered Map so
// that field order survives the whole load → normalize → export path and
// keeps artifacts diffable across runs. Values inside a Map are one of:
// nil, bool, string, int64, float64, []interface{}, or *Map.
package doc

import (
	"bytes"
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/internacia/dataset/errors"
)

// Map is an insertion-ordered string-keyed mapping.
type Map struct {
	keys   []string
	values map[string]interface{}
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]interface{})}
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (m *Map) Keys() []string {
	return m.keys
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value for key. An existing key keeps its position; a new key
// is appended.
func (m *Map) Set(key string, v interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Decode converts a parsed YAML node into the doc value model.
func Decode(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return Decode(n.Content[0])
	case yaml.AliasNode:
		return Decode(n.Alias)
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, errors.Newf("line %d: mapping key is not a scalar", key.Line)
			}
			v, err := Decode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			// Raw key text, so an unquoted "no" key stays "no" instead of
			// resolving to a boolean.
			m.Set(key.Value, v)
		}
		return m, nil
	case yaml.SequenceNode:
		seq := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := Decode(c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	default:
		return nil, nil
	}
}

func decodeScalar(n *yaml.Node) (interface{}, error) {
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errors.Wrapf(err, "line %d: bad boolean", n.Line)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, errors.Wrapf(err, "line %d: bad integer", n.Line)
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "line %d: bad float", n.Line)
		}
		return f, nil
	default:
		// Strings, timestamps, and anything exotic keep their raw text so
		// round-tripping stays lossless.
		return n.Value, nil
	}
}

// MarshalJSON encodes the map preserving key order, without HTML escaping.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := appendJSON(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case *Map:
		buf.WriteByte('{')
		for i, key := range val.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendScalarJSON(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := appendJSON(buf, val.values[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []interface{}:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return appendScalarJSON(buf, v)
	}
}

func appendScalarJSON(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode appends a newline; the caller controls line breaks.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// MarshalYAML encodes the map as a YAML mapping node preserving key order.
func (m *Map) MarshalYAML() (interface{}, error) {
	return yamlNode(m)
}

func yamlNode(v interface{}) (*yaml.Node, error) {
	switch val := v.(type) {
	case *Map:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range val.keys {
			keyNode := &yaml.Node{}
			keyNode.SetString(key)
			valNode, err := yamlNode(val.values[key])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, keyNode, valNode)
		}
		return n, nil
	case []interface{}:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range val {
			elemNode, err := yamlNode(elem)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, elemNode)
		}
		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(val); err != nil {
			return nil, err
		}
		return n, nil
	}
}

// Clone returns a deep copy of a doc value.
func Clone(v interface{}) interface{} {
	switch val := v.(type) {
	case *Map:
		out := NewMap()
		for _, key := range val.keys {
			out.Set(key, Clone(val.values[key]))
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = Clone(elem)
		}
		return out
	default:
		return v
	}
}

// Plain converts the map to ordinary Go maps and slices. Key order is lost;
// intended for interop with decoders that expect map[string]interface{}.
func (m *Map) Plain() map[string]interface{} {
	out := make(map[string]interface{}, len(m.keys))
	for _, key := range m.keys {
		out[key] = plain(m.values[key])
	}
	return out
}

func plain(v interface{}) interface{} {
	switch val := v.(type) {
	case *Map:
		return val.Plain()
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = plain(elem)
		}
		return out
	default:
		return v
	}
}

// SortedKeys returns the keys in lexical order. Handy for deterministic
// diagnostics; artifact output always uses insertion order instead.
func (m *Map) SortedKeys() []string {
	out := append([]string(nil), m.keys...)
	sort.Strings(out)
	return out
}
