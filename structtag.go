package checkarg

import (
	"sort"
	"strings"
)

// tagSet is a parsed `checkarg:"..."` struct tag. Keys are separated by
// commas, values follow '=', and single quotes protect commas inside a
// value: `short=i,help='input, or stdin'`.
type tagSet map[string]string

func parseTag(tag string) tagSet {
	ts := tagSet{}

	var key, val strings.Builder
	inValue, quoted := false, false
	flush := func() {
		if key.Len() > 0 || inValue {
			ts[key.String()] = val.String()
		}
		key.Reset()
		val.Reset()
		inValue = false
	}

	for _, c := range tag {
		switch {
		case quoted:
			if c == '\'' {
				quoted = false
			} else {
				val.WriteRune(c)
			}
		case c == ',':
			flush()
		case !inValue && c == '=':
			inValue = true
		case !inValue && c == ' ':
		case !inValue:
			key.WriteRune(c)
		case c == '\'':
			quoted = true
		default:
			val.WriteRune(c)
		}
	}
	flush()

	return ts
}

// pop removes key from the set and returns its value.
func (ts tagSet) pop(key string) (string, bool) {
	val, ok := ts[key]
	if ok {
		delete(ts, key)
	}
	return val, ok
}

// rest returns the keys that were never popped, sorted.
func (ts tagSet) rest() []string {
	keys := make([]string, 0, len(ts))
	for k := range ts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
