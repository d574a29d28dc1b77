// Package inputs reads per-jurisdiction metric values from files and flag overrides.
package inputs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"gopkg.in/yaml.v3"
)

// UnnamedJurisdiction is used when no name can be derived from flags, file or path.
const UnnamedJurisdiction = "Unnamed"

// Errors returned while reading inputs.
var (
	ErrNotMapping      = errors.New("expected a mapping")
	ErrInvalidValue    = errors.New("metric values must be scalars")
	ErrInvalidOverride = errors.New("invalid override")
)

// Document is one jurisdiction's set of raw metric values.
type Document struct {
	Jurisdiction string
	Values       schema.Values
	Source       string
}

type rawDocument struct {
	Jurisdiction string    `yaml:"jurisdiction"`
	Values       yaml.Node `yaml:"values"`
}

// LoadFile reads an input document from a YAML or JSON file, or stdin for "-".
func LoadFile(path string) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if path == contract.StdinPath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input %q: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes an input document. YAML numbers become Number, booleans
// Boolean, null Absent and everything else Text.
func Parse(data []byte, source string) (*Document, error) {
	doc := &Document{Values: schema.Values{}, Source: source}
	if strings.TrimSpace(string(data)) == "" {
		return doc, nil
	}

	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse input %q: %w", source, err)
	}
	doc.Jurisdiction = strings.TrimSpace(raw.Jurisdiction)

	if raw.Values.Kind == 0 {
		return doc, nil
	}
	if raw.Values.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse input %q: values: %w", source, ErrNotMapping)
	}
	for i := 0; i+1 < len(raw.Values.Content); i += 2 {
		category, metrics := raw.Values.Content[i].Value, raw.Values.Content[i+1]
		if metrics.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("parse input %q: values.%s: %w", source, category, ErrNotMapping)
		}
		for j := 0; j+1 < len(metrics.Content); j += 2 {
			key, node := metrics.Content[j].Value, metrics.Content[j+1]
			v, err := nodeValue(node)
			if err != nil {
				return nil, fmt.Errorf("parse input %q: values.%s.%s: %w", source, category, key, err)
			}
			doc.Values.Set(category, key, v)
		}
	}
	return doc, nil
}

// nodeValue converts a scalar node using its resolved YAML tag.
func nodeValue(node *yaml.Node) (schema.Value, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return schema.Absent(), ErrInvalidValue
	}

	switch node.ShortTag() {
	case "!!null":
		return schema.Absent(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return schema.Absent(), err
		}
		return schema.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return schema.Absent(), err
		}
		return schema.Number(f), nil
	default:
		return schema.Text(node.Value), nil
	}
}

// ParseValue infers a typed value from a command-line string:
// true/false/yes/no become Boolean, numbers become Number,
// empty or "null" becomes Absent and anything else is Text.
func ParseValue(s string) schema.Value {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "", "null", "none", "n/a":
		return schema.Absent()
	case "true", "yes":
		return schema.Bool(true)
	case "false", "no":
		return schema.Bool(false)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return schema.Number(f)
	}
	return schema.Text(trimmed)
}

// ApplyOverrides layers Category.metric=value assignments onto a copy of values.
// The key splits on its last dot, so category names may contain dots.
func ApplyOverrides(values schema.Values, sets []string) (schema.Values, error) {
	out := values.Clone()
	for _, raw := range sets {
		key, val, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("%w %q: expected Category.metric=value", ErrInvalidOverride, raw)
		}
		dot := strings.LastIndex(key, ".")
		if dot <= 0 || dot == len(key)-1 {
			return nil, fmt.Errorf("%w %q: expected Category.metric=value", ErrInvalidOverride, raw)
		}
		category := strings.TrimSpace(key[:dot])
		metric := strings.TrimSpace(key[dot+1:])
		out.Set(category, metric, ParseValue(val))
	}
	return out, nil
}

// ResolveJurisdiction picks the jurisdiction name: explicit flag first, then the
// document, then the input file name, then UnnamedJurisdiction.
func ResolveJurisdiction(flag string, doc *Document) string {
	if name := strings.TrimSpace(flag); name != "" {
		return name
	}
	if doc == nil {
		return UnnamedJurisdiction
	}
	if doc.Jurisdiction != "" {
		return doc.Jurisdiction
	}
	if doc.Source != "" && doc.Source != contract.StdinPath {
		base := filepath.Base(doc.Source)
		if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
			return stem
		}
	}
	return UnnamedJurisdiction
}
