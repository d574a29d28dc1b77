package schema

import (
	"encoding/json"
	"maps"
	"strconv"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

// All input variants supported.
const (
	AbsentValue ValueKind = iota // zero value, so an unset Value is absent
	NumberValue
	TextValue
	BoolValue
)

// String returns the lower-case variant name.
func (k ValueKind) String() string {
	switch k {
	case NumberValue:
		return "number"
	case TextValue:
		return "text"
	case BoolValue:
		return "boolean"
	default:
		return "absent"
	}
}

// Value is one raw metric input as supplied by the input layer.
// Exactly one of Num, Str or Flag is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Flag bool
}

// Absent returns a missing value.
func Absent() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: NumberValue, Num: f} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: TextValue, Str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: BoolValue, Flag: b} }

// ValueOf converts a decoded JSON/YAML scalar into a Value.
// Unsupported types (maps, slices) become absent.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Absent()
	case Value:
		return v
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return Number(f)
		}
		return Text(v.String())
	case string:
		return Text(v)
	case bool:
		return Bool(v)
	default:
		return Absent()
	}
}

// IsAbsent reports whether no value was supplied.
func (v Value) IsAbsent() bool {
	return v.Kind == AbsentValue
}

// Any returns the underlying Go value, nil when absent.
func (v Value) Any() any {
	switch v.Kind {
	case NumberValue:
		return v.Num
	case TextValue:
		return v.Str
	case BoolValue:
		return v.Flag
	default:
		return nil
	}
}

// String renders the value the way it appears in rationales and exports.
func (v Value) String() string {
	switch v.Kind {
	case NumberValue:
		return FormatNumber(v.Num)
	case TextValue:
		return v.Str
	case BoolValue:
		return strconv.FormatBool(v.Flag)
	default:
		return "N/A"
	}
}

// MarshalJSON encodes the value as a plain JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON decodes a plain JSON scalar.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = ValueOf(raw)
	return nil
}

// Values holds raw inputs keyed by category name, then metric key.
type Values map[string]map[string]Value

// Get returns the value for a metric, absent when it was never supplied.
func (vs Values) Get(category, metric string) Value {
	if vs == nil {
		return Absent()
	}
	return vs[category][metric]
}

// Set stores the value for a metric.
func (vs Values) Set(category, metric string, v Value) {
	if vs[category] == nil {
		vs[category] = make(map[string]Value)
	}
	vs[category][metric] = v
}

// Clone returns a deep copy so callers can layer overrides without sharing state.
func (vs Values) Clone() Values {
	clone := make(Values, len(vs))
	for cat, metrics := range vs {
		clone[cat] = maps.Clone(metrics)
	}
	return clone
}
