package types

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

// Value is a loosely typed content scalar as decoded from JSON: a
// float64, a string, a bool or nil. The zero Value is "unset", i.e. the
// key was absent from the source document.
type Value struct {
	v   any
	set bool
}

// NewValue wraps v.
func NewValue(v any) Value {
	return Value{v: v, set: true}
}

// IsSet reports whether the value was present in the source.
func (v Value) IsSet() bool {
	return v.set
}

// Raw returns the decoded value.
func (v Value) Raw() any {
	return v.v
}

// Number returns the finite numeric reading of v, if any.
func (v Value) Number() (float64, bool) {
	if !v.set {
		return 0, false
	}
	switch v.v.(type) {
	case map[string]any, []any:
		return 0, false
	}
	return ToFiniteNumber(v.v)
}

// Truthy reports whether v counts as present for defaulting purposes.
// Unset, null, false, zero and the empty string are not truthy.
func (v Value) Truthy() bool {
	if !v.set || v.v == nil {
		return false
	}
	switch vv := v.v.(type) {
	case bool:
		return vv
	case string:
		return vv != ""
	case float64:
		return vv != 0
	}
	return true
}

// String returns the text form of v. Numbers use FormatNumber, an unset
// value is "undefined" and null is "null".
func (v Value) String() string {
	if !v.set {
		return "undefined"
	}
	switch vv := v.v.(type) {
	case nil:
		return "null"
	case float64:
		return FormatNumber(vv)
	case bool:
		return strconv.FormatBool(vv)
	case string:
		return vv
	}
	return cast.ToString(v.v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &raw); err != nil {
		return err
	}
	*v = NewValue(raw)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v.v)
}
