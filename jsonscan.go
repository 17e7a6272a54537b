package cmapgen

import (
	"encoding/json"
	"fmt"
)

func JsonScan[T any](src interface{}, b T) error {
	switch v := src.(type) {
	case []byte:
		if string(v) == "null" {
			v = []byte("[]")
		}
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot convert %T", src)
	}
}

// ParseTable parses the extracted payload as a JSON array of RGB
// triplets. Entries with an arity other than 3 are rejected here
// rather than left to blow up during formatting.
func ParseTable(payload string) (Table, error) {
	var raw [][]float64
	if err := JsonScan(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	table := make(Table, 0, len(raw))
	for i, entry := range raw {
		if len(entry) != 3 {
			return nil, fmt.Errorf("%w: entry %d has %d channels, want 3", ErrMalformedData, i, len(entry))
		}
		table = append(table, Triplet{entry[0], entry[1], entry[2]})
	}
	return table, nil
}
