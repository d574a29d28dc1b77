// Package rubric loads and validates declarative scoring rubrics.
package rubric

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/readiness/schema"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultRubric []byte

// DefaultSource names the embedded rubric in results and messages.
const DefaultSource = "embedded:default.yaml"

// Structural errors returned while parsing.
var (
	ErrNoCategories = errors.New("rubric has no categories")
	ErrNotMapping   = errors.New("expected a mapping")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrMissingField = errors.New("missing required field")
)

// rawCategory mirrors one category entry. Metrics stay a node so their order survives.
type rawCategory struct {
	Weight  *float64  `yaml:"weight"`
	Metrics yaml.Node `yaml:"metrics"`
}

// rawMetric mirrors one metric entry, including the legacy
// `custom` and `reverse_options` spellings.
type rawMetric struct {
	Label          string    `yaml:"label"`
	Type           string    `yaml:"type"`
	Custom         bool      `yaml:"custom"`
	Breaks         []float64 `yaml:"breaks"`
	Scores         []int     `yaml:"scores"`
	Direction      string    `yaml:"direction"`
	Weight         *float64  `yaml:"weight"`
	Reason         string    `yaml:"reason"`
	Options        []string  `yaml:"options"`
	Reverse        *bool     `yaml:"reverse"`
	ReverseOptions *bool     `yaml:"reverse_options"`
}

// LoadDefault parses and validates the embedded default rubric.
func LoadDefault() (*schema.Rubric, []string, error) {
	return load(defaultRubric, DefaultSource)
}

// Load reads a rubric from a YAML or JSON file and validates it.
// An empty path loads the embedded default rubric.
// The returned warnings are informational and never fatal.
func Load(path string) (*schema.Rubric, []string, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read rubric %q: %w", path, err)
	}
	return load(data, path)
}

func load(data []byte, source string) (*schema.Rubric, []string, error) {
	r, err := Parse(data, source)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := Validate(r)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid rubric %q: %w", source, err)
	}
	return r, warnings, nil
}

// Parse decodes rubric data, preserving category and metric declaration order.
// It applies defaults but does not check scoring invariants; see Validate.
func Parse(data []byte, source string) (*schema.Rubric, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse rubric %q: %w", source, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse rubric %q: %w", source, ErrNoCategories)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse rubric %q: top level: %w", source, ErrNotMapping)
	}
	categories := lookup(root, "categories")
	if categories == nil {
		return nil, fmt.Errorf("parse rubric %q: %w", source, ErrNoCategories)
	}

	r := &schema.Rubric{Source: source}
	err := eachPair(categories, "categories", func(name string, node *yaml.Node) error {
		c, err := parseCategory(name, node)
		if err != nil {
			return err
		}
		r.Categories = append(r.Categories, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse rubric %q: %w", source, err)
	}
	if len(r.Categories) == 0 {
		return nil, fmt.Errorf("parse rubric %q: %w", source, ErrNoCategories)
	}
	return r, nil
}

func parseCategory(name string, node *yaml.Node) (schema.Category, error) {
	var raw rawCategory
	if err := node.Decode(&raw); err != nil {
		return schema.Category{}, fmt.Errorf("category %q: %w", name, err)
	}
	if raw.Weight == nil {
		return schema.Category{}, fmt.Errorf("category %q: weight: %w", name, ErrMissingField)
	}

	c := schema.Category{Name: name, Weight: *raw.Weight}
	if raw.Metrics.Kind == 0 {
		return c, nil
	}
	err := eachPair(&raw.Metrics, name+".metrics", func(key string, mnode *yaml.Node) error {
		m, err := parseMetric(key, mnode)
		if err != nil {
			return fmt.Errorf("metric %s.%s: %w", name, key, err)
		}
		c.Metrics = append(c.Metrics, m)
		return nil
	})
	return c, err
}

func parseMetric(key string, node *yaml.Node) (schema.Metric, error) {
	var raw rawMetric
	if err := node.Decode(&raw); err != nil {
		return schema.Metric{}, err
	}
	if raw.Weight == nil {
		return schema.Metric{}, fmt.Errorf("weight: %w", ErrMissingField)
	}

	m := schema.Metric{
		Key:       key,
		Label:     strings.TrimSpace(raw.Label),
		Type:      schema.MetricType(strings.ToLower(strings.TrimSpace(raw.Type))),
		Weight:    *raw.Weight,
		Reason:    raw.Reason,
		Breaks:    raw.Breaks,
		Scores:    raw.Scores,
		Direction: schema.Direction(strings.ToLower(strings.TrimSpace(raw.Direction))),
		Options:   raw.Options,
	}

	// An explicit type wins; otherwise `custom: true` means a select and breaks mean numeric.
	if m.Type == "" {
		switch {
		case raw.Custom:
			m.Type = schema.GenericSelect
		case len(raw.Breaks) > 0 || len(raw.Scores) > 0:
			m.Type = schema.NumericMetric
		default:
			return schema.Metric{}, fmt.Errorf("type: %w", ErrMissingField)
		}
	}
	if m.Type == schema.NumericMetric && m.Direction == "" {
		m.Direction = schema.HigherBetter
	}
	switch {
	case raw.Reverse != nil:
		m.Reverse = *raw.Reverse
	case raw.ReverseOptions != nil:
		m.Reverse = *raw.ReverseOptions
	}
	return m, nil
}

// lookup returns the value node for key in a mapping node.
func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// eachPair walks a mapping node in declaration order and rejects duplicate keys.
func eachPair(mapping *yaml.Node, path string, fn func(key string, value *yaml.Node) error) error {
	if mapping.Kind != yaml.MappingNode {
		return fmt.Errorf("%s (line %d): %w", path, mapping.Line, ErrNotMapping)
	}
	seen := make(map[string]struct{}, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		k, v := mapping.Content[i], mapping.Content[i+1]
		if _, dup := seen[k.Value]; dup {
			return fmt.Errorf("%s: %q (line %d): %w", path, k.Value, k.Line, ErrDuplicateKey)
		}
		seen[k.Value] = struct{}{}
		if err := fn(k.Value, v); err != nil {
			return err
		}
	}
	return nil
}
