// Flexible-field codec for the SQLite store.
// Structured sub-objects (arrays, nested records) are persisted as encoded
// text in nullable TEXT columns; NULL means the field is absent.
// Implements: prd002-sqlite-store R2 (flexible fields);
//
//	docs/ARCHITECTURE § SQLite Backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

// encodeField marshals a structured value into a nullable TEXT value.
// A nil value (nil pointer, nil slice, nil map, or untyped nil) encodes to
// NULL rather than the literal text "null", so absence stays distinguishable
// from an empty value. Round-trip law: decodeField(encodeField(v), fb) == v
// for every representable v.
func encodeField(v any) (sql.NullString, error) {
	if isNilValue(v) {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encoding flexible field: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// decodeField unmarshals stored flexible-field text into T. A NULL stored
// value yields the caller-specified fallback. Malformed stored text fails
// with an error wrapping ErrCorruptField: corruption must surface, never be
// papered over with a default.
func decodeField[T any](stored sql.NullString, fallback T) (T, error) {
	if !stored.Valid {
		return fallback, nil
	}
	var v T
	if err := json.Unmarshal([]byte(stored.String), &v); err != nil {
		return fallback, fmt.Errorf("%w: %v", types.ErrCorruptField, err)
	}
	return v, nil
}

// isNilValue reports whether v is nil or a nil pointer/slice/map.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		return rv.IsNil()
	default:
		return false
	}
}
