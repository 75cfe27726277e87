package invoice

import (
	"bytes"
	"encoding/json"
)

// Items is the ordered list of line items. Older records persisted the list
// as a JSON string, so both a native array and a string holding an array
// are accepted. A string that does not parse decodes to an empty list.
type Items []Item

func (it *Items) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*it = Items{}
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*it = ParseItems(raw)
		return nil
	}
	var list []Item
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*it = list
	return nil
}

// ParseItems decodes a JSON-encoded item list, returning an empty list when
// raw is not valid.
func ParseItems(raw string) Items {
	var list []Item
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return Items{}
	}
	return list
}
