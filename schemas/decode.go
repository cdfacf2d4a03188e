package schemas

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/guregu/null/v6"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// maxExactFloat is the largest magnitude below which every integer has an
// exact float64 representation.
const maxExactFloat = 1 << 53

// object reads the fields of one JSON object that already passed its
// schema, converting them to the entity's Go types. Only conversions the
// schema cannot express (64-bit range, datetime layouts) add issues.
type object struct {
	raw    map[string]any
	path   string
	issues *[]Issue
}

func newObject(raw map[string]any, path string, issues *[]Issue) *object {
	return &object{raw: raw, path: path, issues: issues}
}

func (o *object) pointer(key string) string {
	return o.path + "/" + escapePointer(key)
}

func (o *object) fail(key string, code string, format string, args ...any) {
	*o.issues = append(*o.issues, Issue{
		Path:    o.pointer(key),
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// value returns the raw value of key. An explicit JSON null counts as absent.
func (o *object) value(key string) (any, bool) {
	v, ok := o.raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (o *object) str(key string) null.String {
	s, ok := o.raw[key].(string)
	if !ok {
		return null.String{}
	}
	return null.StringFrom(s)
}

func (o *object) requiredStr(key string) string {
	return o.str(key).String
}

// text is a string field that also takes numbers and keeps their literal
// form, for identifiers the API may send either way.
func (o *object) text(key string) null.String {
	v, ok := o.value(key)
	if !ok {
		return null.String{}
	}
	return asText(v)
}

func (o *object) requiredText(key string) string {
	return o.text(key).String
}

func asText(v any) null.String {
	if s, ok := v.(string); ok {
		return null.StringFrom(s)
	}
	if s, ok := numberText(v); ok {
		return null.StringFrom(s)
	}
	return null.String{}
}

func (o *object) id(key string) null.Int {
	v, ok := o.value(key)
	if !ok {
		return null.Int{}
	}
	n, ok := toInt64(v)
	if !ok {
		o.fail(key, CodeInvalidType, "expected exact 64-bit integer, got %v", v)
		return null.Int{}
	}
	return null.IntFrom(n)
}

func (o *object) requiredID(key string) int64 {
	return o.id(key).Int64
}

// count reads a metric. Absent metrics are zero.
func (o *object) count(key string) int64 {
	return o.id(key).ValueOrZero()
}

func (o *object) integer(key string) null.Int {
	return o.id(key)
}

// boolean takes JSON booleans and the exact strings "true" and "false".
func (o *object) boolean(key string) null.Bool {
	switch b := o.raw[key].(type) {
	case bool:
		return null.BoolFrom(b)
	case string:
		switch b {
		case "true":
			return null.BoolFrom(true)
		case "false":
			return null.BoolFrom(false)
		}
	}
	return null.Bool{}
}

func (o *object) timestamp(key string) null.Time {
	v, ok := o.value(key)
	if !ok {
		return null.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return null.TimeFrom(t)
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return null.TimeFrom(parsed)
			}
		}
		o.fail(key, CodeInvalidFormat, "invalid datetime format: %q", t)
		return null.Time{}
	}
	if secs, ok := toFloat64(v); ok {
		whole, frac := math.Modf(secs)
		return null.TimeFrom(time.Unix(int64(whole), int64(frac*1e9)).UTC())
	}
	return null.Time{}
}

// opaque keeps any JSON value unchanged.
func (o *object) opaque(key string) any {
	v, _ := o.value(key)
	return v
}

func (o *object) list(key string) []any {
	items, _ := o.raw[key].([]any)
	return items
}

// strList returns nil when key is absent.
func (o *object) strList(key string) []string {
	v, ok := o.value(key)
	if !ok {
		return nil
	}
	if strs, ok := v.([]string); ok {
		return slices.Clone(strs)
	}
	items, _ := v.([]any)
	list := make([]string, 0, len(items))
	for _, item := range items {
		if s := asText(item); s.Valid {
			list = append(list, s.String)
		}
	}
	return list
}

// child returns the nested object at key. An absent key yields an empty
// object so nested defaults still apply.
func (o *object) child(key string) *object {
	m, _ := o.raw[key].(map[string]any)
	return newObject(m, o.pointer(key), o.issues)
}

// objects calls fn for every object in the array at key and reports
// whether the key was present at all.
func (o *object) objects(key string, fn func(item *object)) bool {
	v, ok := o.value(key)
	if !ok {
		return false
	}
	items, _ := v.([]any)
	for i, entry := range items {
		if m, ok := entry.(map[string]any); ok {
			fn(newObject(m, o.pointer(key)+"/"+strconv.Itoa(i), o.issues))
		}
	}
	return true
}

func enumField[T ~string](o *object, key string, parse func(string) (T, bool)) T {
	s, _ := o.raw[key].(string)
	member, _ := parse(s)
	return member
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		return parseIntText(string(n))
	case string:
		return parseIntText(strings.TrimSpace(n))
	}
	return 0, false
}

func parseIntText(s string) (int64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	// exponent or fraction forms are accepted when they are integral and
	// small enough to survive the trip through float64
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatToInt64(f)
}

func uintToInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

// floatToInt64 refuses values above 2^53: the float may already be a
// rounded neighbour of the intended identifier.
func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > maxExactFloat {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string, bool:
		return 0, false
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

func numberText(v any) (string, bool) {
	switch n := v.(type) {
	case json.Number:
		return string(n), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case string, bool:
		return "", false
	}
	if i, ok := toInt64(v); ok {
		return strconv.FormatInt(i, 10), true
	}
	return "", false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case json.Number, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
