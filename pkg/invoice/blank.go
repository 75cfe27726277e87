package invoice

import (
	"bytes"
	"encoding/json"
)

var (
	emptyString = []byte(`""`)
	jsonNull    = []byte("null")
)

// blankToNull rewrites top-level `""` values of a JSON object to null. Form
// submissions send untouched numeric inputs as empty strings, and a decimal
// field only accepts null or a number.
func blankToNull(data []byte) []byte {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return data
	}
	changed := false
	for k, v := range fields {
		if bytes.Equal(bytes.TrimSpace(v), emptyString) {
			fields[k] = jsonNull
			changed = true
		}
	}
	if !changed {
		return data
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return data
	}
	return out
}

// UnmarshalJSON treats empty strings as absent values.
func (inv *Invoice) UnmarshalJSON(data []byte) error {
	type plain Invoice
	return json.Unmarshal(blankToNull(data), (*plain)(inv))
}

// UnmarshalJSON treats empty strings as absent values.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	return json.Unmarshal(blankToNull(data), (*plain)(it))
}
