package schemas

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

// entity pairs the compiled JSON Schema of one entity with its decoder.
// The schema decides whether the input is acceptable; the decoder only
// normalizes values the schema already accepted.
type entity[T any] struct {
	name   string
	schema *jsonschema.Schema
	decode func(*object) T
}

func newEntity[T any](name string, def string, decode func(*object) T) *entity[T] {
	return &entity[T]{
		name:   name,
		schema: jsonschema.MustCompileString(schemaBaseURL+def+".json", document(def)),
		decode: decode,
	}
}

var (
	tweetEntity           = newEntity("Tweet", "tweet", decodeTweet)
	userEntity            = newEntity("User", "user", decodeUser)
	mediaEntity           = newEntity("Media", "media", decodeMedia)
	pollEntity            = newEntity("Poll", "poll", decodePoll)
	placeEntity           = newEntity("Place", "place", decodePlace)
	referencedTweetEntity = newEntity("ReferencedTweet", "referenced_tweet", decodeReferencedTweet)
	includesEntity        = newEntity("Includes", "includes", decodeIncludes)
)

func (e *entity[T]) validate(raw map[string]any) (T, error) {
	var issues []Issue
	value := e.run(raw, "", &issues)
	if len(issues) > 0 {
		var zero T
		return zero, &ValidationError{Entity: e.name, Issues: issues}
	}
	return value, nil
}

// run checks value and decodes it. Issue paths are rooted at base.
func (e *entity[T]) run(value any, base string, issues *[]Issue) T {
	found := check(e.schema, value, base)
	raw, _ := value.(map[string]any)
	var decoded []Issue
	result := e.decode(newObject(raw, base, &decoded))
	*issues = append(*issues, merge(found, decoded)...)
	return result
}

func check(schema *jsonschema.Schema, value any, base string) []Issue {
	var issues []Issue
	tree, ok := jsonTree(value, base, &issues)
	if !ok {
		return issues
	}

	err := schema.Validate(tree)
	var verr *jsonschema.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		var found []Issue
		for _, leaf := range leaves(verr, nil) {
			found = append(found, leafIssues(leaf, tree, base)...)
		}
		issues = merge(issues, found)
	default:
		issues = append(issues, Issue{Path: base, Code: CodeInvalidType, Message: err.Error()})
	}
	return issues
}

// merge appends the issues of extra whose path has no issue in issues yet
// and orders the result by path.
func merge(issues []Issue, extra []Issue) []Issue {
	merged := slices.Clone(issues)
	for _, issue := range extra {
		covered := slices.ContainsFunc(issues, func(other Issue) bool {
			return other.Path == issue.Path
		})
		if !covered {
			merged = append(merged, issue)
		}
	}
	slices.SortStableFunc(merged, func(a, b Issue) int {
		return strings.Compare(a.Path, b.Path)
	})
	return merged
}

// jsonTree converts value into the plain JSON tree the validator accepts.
// Object members set to null are dropped, so null and absent are the same
// thing to the schema. Values JSON cannot represent are reported and left
// out of the tree.
func jsonTree(value any, path string, issues *[]Issue) (any, bool) {
	switch v := value.(type) {
	case nil, bool, string, json.Number:
		return v, true
	case map[string]any:
		fields := make(map[string]any, len(v))
		for key, field := range v {
			if field == nil {
				continue
			}
			if tree, ok := jsonTree(field, path+"/"+escapePointer(key), issues); ok {
				fields[key] = tree
			}
		}
		return fields, true
	case []any:
		items := make([]any, 0, len(v))
		for i, item := range v {
			tree, _ := jsonTree(item, path+"/"+strconv.Itoa(i), issues)
			items = append(items, tree)
		}
		return items, true
	case float64:
		return jsonFloat(v, path, issues)
	case float32:
		return jsonFloat(float64(v), path, issues)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return json.Number(fmt.Sprint(v)), true
	case time.Time:
		return v.Format(time.RFC3339Nano), true
	}

	b, err := json.Marshal(value)
	if err != nil {
		*issues = append(*issues, Issue{
			Path:    path,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("value is not JSON serializable: %v", err),
		})
		return nil, false
	}
	return jsonTree(Value(gjson.ParseBytes(b)), path, issues)
}

func jsonFloat(f float64, path string, issues *[]Issue) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		*issues = append(*issues, Issue{
			Path:    path,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("value is not JSON serializable: %v", f),
		})
		return nil, false
	}
	return f, true
}

// leaves returns the errors that name a single failed keyword. A failed
// oneOf is reported as a whole: its branches only explain which
// alternatives were tried.
func leaves(err *jsonschema.ValidationError, out []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	switch keyword(schemaFragment(err.AbsoluteKeywordLocation)) {
	case "oneOf", "anyOf":
		return append(out, err)
	}
	if len(err.Causes) == 0 {
		return append(out, err)
	}
	for _, cause := range err.Causes {
		out = leaves(cause, out)
	}
	return out
}

func leafIssues(leaf *jsonschema.ValidationError, tree any, base string) []Issue {
	path := base + leaf.InstanceLocation
	instance, _ := resolve(tree, leaf.InstanceLocation)
	fragment := schemaFragment(leaf.AbsoluteKeywordLocation)

	switch keyword(fragment) {
	case "required":
		fields, _ := instance.(map[string]any)
		var issues []Issue
		for _, name := range lookup(fragment).Array() {
			if _, ok := fields[name.String()]; !ok {
				issues = append(issues, Issue{
					Path:    path + "/" + escapePointer(name.String()),
					Code:    CodeRequired,
					Message: "field required",
				})
			}
		}
		if len(issues) == 0 {
			issues = append(issues, Issue{Path: path, Code: CodeRequired, Message: leaf.Message})
		}
		return issues

	case "additionalProperties":
		fields, _ := instance.(map[string]any)
		declared := lookup(parentPointer(fragment) + "/properties")
		var unknown []string
		for key := range fields {
			if !declared.Get(gjsonEscape(key)).Exists() {
				unknown = append(unknown, key)
			}
		}
		slices.Sort(unknown)
		issues := make([]Issue, 0, len(unknown))
		for _, key := range unknown {
			issues = append(issues, Issue{
				Path:    path + "/" + escapePointer(key),
				Code:    CodeUnknownKey,
				Message: "extra fields not permitted",
			})
		}
		if len(issues) == 0 {
			issues = append(issues, Issue{Path: path, Code: CodeUnknownKey, Message: leaf.Message})
		}
		return issues

	case "enum":
		s, ok := instance.(string)
		if !ok {
			return []Issue{{
				Path:    path,
				Code:    CodeInvalidType,
				Message: "expected string, got " + typeName(instance),
			}}
		}
		var members []string
		for _, member := range lookup(fragment).Array() {
			members = append(members, member.String())
		}
		return []Issue{{
			Path:    path,
			Code:    CodeInvalidEnum,
			Message: fmt.Sprintf("value %q is not one of %s", s, strings.Join(members, ", ")),
		}}
	}

	return []Issue{{
		Path:    path,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("expected %s, got %s", expected(fragment), typeName(instance)),
	}}
}

// expected describes what the schema holding keyword fragment accepts.
func expected(fragment string) string {
	schema := lookup(parentPointer(fragment))
	if title := schema.Get("title"); title.Exists() {
		return title.String()
	}
	kind := schema.Get("type")
	if kind.IsArray() {
		var kinds []string
		for _, k := range kind.Array() {
			kinds = append(kinds, k.String())
		}
		return strings.Join(kinds, " or ")
	}
	if kind.Exists() {
		return kind.String()
	}
	return "a valid value"
}

// schemaFragment returns the JSON Pointer part of an absolute keyword
// location such as https://host/tweet.json#/$defs/tweet/required.
func schemaFragment(location string) string {
	i := strings.LastIndexByte(location, '#')
	if i < 0 {
		return ""
	}
	fragment := location[i+1:]
	if unescaped, err := url.PathUnescape(fragment); err == nil {
		fragment = unescaped
	}
	return fragment
}

func keyword(fragment string) string {
	return fragment[strings.LastIndexByte(fragment, '/')+1:]
}

func parentPointer(pointer string) string {
	i := strings.LastIndexByte(pointer, '/')
	if i < 0 {
		return ""
	}
	return pointer[:i]
}

// lookup reads the schema at pointer. Every document nests definitions
// under $defs, so pointers are resolved against definitions directly.
func lookup(pointer string) gjson.Result {
	tokens := pointerTokens(pointer)
	if len(tokens) < 2 || tokens[0] != "$defs" {
		return gjson.Result{}
	}
	path := make([]string, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		path = append(path, gjsonEscape(token))
	}
	return gjson.Get(definitions, strings.Join(path, "."))
}

func gjsonEscape(key string) string {
	b := &strings.Builder{}
	for _, r := range key {
		isWord := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !isWord {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func resolve(tree any, pointer string) (any, bool) {
	for _, token := range pointerTokens(pointer) {
		switch node := tree.(type) {
		case map[string]any:
			value, ok := node[token]
			if !ok {
				return nil, false
			}
			tree = value
		case []any:
			i, err := strconv.Atoi(token)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			tree = node[i]
		default:
			return nil, false
		}
	}
	return tree, true
}

func pointerTokens(pointer string) []string {
	if pointer == "" {
		return nil
	}
	tokens := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, token := range tokens {
		token = strings.ReplaceAll(token, "~1", "/")
		tokens[i] = strings.ReplaceAll(token, "~0", "~")
	}
	return tokens
}

func escapePointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
