package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is a list of free-form labels stored as a jsonb column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

func (t *Tags) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Tags", src)
	}
	return json.Unmarshal(data, t)
}
