package schemas

import (
	"strconv"

	"twitteralchemy/util"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = &util.Error{Message: "response body is not valid JSON"}

// Response is one API response: the primary entities in Data plus the
// side-loaded ones. Errors and Meta are kept as sent.
type Response[T any] struct {
	Data     []T       `json:"data"`
	Includes *Includes `json:"includes,omitempty"`
	Errors   any       `json:"errors,omitempty"`
	Meta     any       `json:"meta,omitempty"`
}

func ParseTweetResponse(body []byte) (*Response[*Tweet], error) {
	return parseResponse("TweetResponse", body, tweetEntity)
}

func ParseUserResponse(body []byte) (*Response[*User], error) {
	return parseResponse("UserResponse", body, userEntity)
}

// parseResponse accepts `data` as an array (search, timelines) or a single
// object (lookup by id).
func parseResponse[T any](
	name string,
	body []byte,
	primary *entity[T],
) (*Response[T], error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, &ValidationError{
			Entity: name,
			Issues: []Issue{{Code: CodeInvalidType, Message: "expected object"}},
		}
	}

	var issues []Issue
	response := &Response[T]{Data: []T{}}

	data := root.Get("data")
	switch {
	case !data.Exists() || data.Type == gjson.Null:
	case data.IsArray():
		for i, item := range data.Array() {
			path := "/data/" + strconv.Itoa(i)
			response.Data = append(response.Data, primary.run(Value(item), path, &issues))
		}
	case data.IsObject():
		response.Data = append(response.Data, primary.run(Value(data), "/data", &issues))
	default:
		issues = append(issues, Issue{
			Path:    "/data",
			Code:    CodeInvalidType,
			Message: "expected array or object, got " + typeName(Value(data)),
		})
	}

	if includes := root.Get("includes"); includes.Exists() && includes.Type != gjson.Null {
		response.Includes = includesEntity.run(Value(includes), "/includes", &issues)
	}
	response.Errors = Value(root.Get("errors"))
	response.Meta = Value(root.Get("meta"))

	if len(issues) > 0 {
		return nil, &ValidationError{Entity: name, Issues: issues}
	}
	return response, nil
}

// Value converts a gjson result into the plain tree the constructors take.
// Numbers become json.Number so 64-bit identifiers keep every digit.
func Value(result gjson.Result) any {
	switch result.Type {
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return json.Number(result.Raw)
	case gjson.String:
		return result.Str
	case gjson.JSON:
		if result.IsArray() {
			items := []any{}
			result.ForEach(func(_, value gjson.Result) bool {
				items = append(items, Value(value))
				return true
			})
			return items
		}
		fields := map[string]any{}
		result.ForEach(func(key, value gjson.Result) bool {
			fields[key.String()] = Value(value)
			return true
		})
		return fields
	}
	return nil
}

// Decode parses a single JSON object into the tree the constructors take.
func Decode(body []byte) (map[string]any, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}
	raw, ok := Value(gjson.ParseBytes(body)).(map[string]any)
	if !ok {
		return nil, ErrInvalidJSON
	}
	return raw, nil
}
