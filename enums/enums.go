// Package enums holds the closed value sets accepted by the entity schemas.
// Every enum is a string type so a validated value can be stored, compared
// and serialized as its plain string.
package enums

// parse returns the member of values equal to value. Matching is exact:
// "Photo" is not a MediaType.
func parse[T ~string](values []T, value string) (T, bool) {
	for _, v := range values {
		if string(v) == value {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Strings lists the members of an enum, used in validation messages.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
