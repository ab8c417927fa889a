package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Nested order structures (line items, state history, product name lists) are
// stored as JSONB columns and always replaced wholesale, never deep-merged.

func jsonbValue(v any) (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func jsonbScan(dest any, src any) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("jsonb: unsupported source type %T", src)
	}
}
