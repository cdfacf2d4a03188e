package schemas

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/guregu/null/v6"
)

// Dict is a flat, single-level projection of an entity. Values are nil,
// strings, booleans, int64, time.Time, or, for a few list fields, slices.
type Dict map[string]any

// Flattener is implemented by every entity schema.
type Flattener interface {
	// ToDict emits the stable subset that is also persisted.
	ToDict() Dict
	// ToFullDict adds the opaque fields as JSON text.
	ToFullDict() Dict
}

var (
	_ Flattener = (*Tweet)(nil)
	_ Flattener = (*User)(nil)
	_ Flattener = (*Media)(nil)
	_ Flattener = (*Poll)(nil)
	_ Flattener = (*Place)(nil)
	_ Flattener = (*Includes)(nil)
)

func nullString(s null.String) any {
	if !s.Valid {
		return nil
	}
	return s.String
}

func nullInt(i null.Int) any {
	if !i.Valid {
		return nil
	}
	return i.Int64
}

func nullBool(b null.Bool) any {
	if !b.Valid {
		return nil
	}
	return b.Bool
}

func nullTime(t null.Time) any {
	if !t.Valid {
		return nil
	}
	return t.Time
}

// idString renders a wide identifier as decimal text. JSON consumers that
// store numbers as doubles lose precision above 2^53.
func idString(i null.Int) any {
	if !i.Valid {
		return nil
	}
	return strconv.FormatInt(i.Int64, 10)
}

func enumString[T ~string](v T) any {
	if v == "" {
		return nil
	}
	return string(v)
}

// blob renders an opaque value as JSON text; absent values stay nil.
// Values reaching here were checked during validation.
func blob(v any) any {
	if v == nil {
		return nil
	}
	if items, ok := v.([]any); ok && items == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	return string(b)
}
