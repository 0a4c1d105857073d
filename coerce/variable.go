package coerce

import (
	"sort"

	"github.com/shyptr/gqlschema"
	"github.com/shyptr/gqlschema/gqlerrors"
	"github.com/shyptr/gqlschema/value"
)

// CoerceVariable validates and converts an external JSON variable value
// against iv. present distinguishes a JSON key that was omitted entirely
// (present=false) from one explicitly set to `null` (present=true,
// raw=nil) — a distinction encoding/json's map[string]interface{}
// representation alone cannot express, so callers look the key up with
// the two-result map form and pass both through.
func CoerceVariable(iv *gqlschema.InputValue, raw interface{}, present bool, location string) gqlerrors.Result[value.Value] {
	return coerceValue(iv, jsonToValue(raw, present), location, true)
}

// jsonToValue converts a decoded JSON node (nil, bool, float64, string,
// []interface{}, map[string]interface{} — the shapes encoding/json's
// interface{} decode produces) into this module's Value model.
func jsonToValue(raw interface{}, present bool) value.Value {
	if !present {
		return value.Absent
	}
	if raw == nil {
		return value.Null
	}
	switch v := raw.(type) {
	case bool:
		return value.Boolean(v)
	case float64:
		if v == float64(int64(v)) {
			return value.Int(int64(v))
		}
		return value.Float(v)
	case string:
		return value.String(v)
	case []interface{}:
		items := make([]value.Value, len(v))
		for i, el := range v {
			items[i] = jsonToValue(el, true)
		}
		return value.ListOf(items...)
	case map[string]interface{}:
		names := make([]string, 0, len(v))
		for k := range v {
			names = append(names, k)
		}
		sort.Strings(names)
		fields := make([]value.ObjectField, len(names))
		for i, name := range names {
			fields[i] = value.ObjectField{Name: name, Value: jsonToValue(v[name], true)}
		}
		return value.ObjectOf(fields...)
	default:
		return value.Null
	}
}
