package util

import (
	"encoding/json"
	"fmt"
)

// DecodeJSON accepts the shapes device params arrive in: raw JSON bytes, a
// JSON string, or an already-decoded map, and lands them in dst.
func DecodeJSON[T any](src any, dst *T) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, dst)
	}
}

func Errf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
