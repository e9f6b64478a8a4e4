// Package fixture turns hand-written request files into JSON wire text.
//
// Three formats are accepted: JSON, human JSON (comments and trailing commas)
// and YAML. Object key order is kept in every case so the JSON produced matches
// the order the author wrote.
package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

var ErrUnsupported = errors.New("fixture: unsupported YAML construct")

// FormatFromPath picks a format by file extension. Anything that is not .yaml
// or .yml is read as (human) JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads path and returns its contents as standard JSON.
func Load(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out, err := ToJSON(b, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func ToJSON(b []byte, f Format) ([]byte, error) {
	if f == FormatYAML {
		return YAMLToJSON(b)
	}
	return HuJSONToJSON(b)
}

// HuJSONToJSON strips comments and trailing commas.
func HuJSONToJSON(b []byte) ([]byte, error) {
	out, err := hujson.Standardize(b)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return out, nil
}

// YAMLToJSON converts a single YAML document to compact JSON, keeping mapping
// key order. Aliases are expanded; merge keys and non-scalar keys are rejected.
func YAMLToJSON(b []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	if doc.Kind == 0 {
		return nil, errors.New("fixture: empty YAML document")
	}
	var buf bytes.Buffer
	if err := writeNode(&buf, &doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return errors.New("fixture: empty YAML document")
		}
		return writeNode(buf, n.Content[0])
	case yaml.AliasNode:
		return writeNode(buf, n.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: non-scalar key at line %d", ErrUnsupported, k.Line)
			}
			if k.ShortTag() == "!!merge" {
				return fmt.Errorf("%w: merge key at line %d", ErrUnsupported, k.Line)
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k.Value)
			buf.WriteByte(':')
			if err := writeNode(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNode(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		return writeScalar(buf, n)
	default:
		return fmt.Errorf("%w: node kind %d at line %d", ErrUnsupported, n.Kind, n.Line)
	}
}

func writeScalar(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		buf.WriteString("null")
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("fixture: line %d: %w", n.Line, err)
		}
		buf.WriteString(strconv.FormatBool(v))
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("fixture: line %d: %w", n.Line, err)
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("fixture: line %d: %w", n.Line, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s has no JSON form (line %d)", ErrUnsupported, n.Value, n.Line)
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		// Strings, timestamps and binary stay as their source text.
		writeString(buf, n.Value)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}
