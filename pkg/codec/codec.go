package codec

import (
	"strconv"
	"strings"
)

// Extract scans body for the quoted key token and returns the scalar value
// that follows it. The scan locates `"key"`, skips to the next ':', skips
// whitespace and an optional opening quote, then reads forward to the first
// '"', ',' or '}'. The result is trimmed; an empty result is reported as
// absent (ok == false).
//
// Values containing a literal '}' or an unescaped '"' are cut short at that
// character. That is a documented limitation, not an error.
func Extract(body, key string) (string, bool) {
	token := `"` + key + `"`
	start := strings.Index(body, token)
	if start == -1 {
		return "", false
	}

	colon := strings.IndexByte(body[start+len(token):], ':')
	if colon == -1 {
		return "", false
	}

	i := start + len(token) + colon + 1
	for i < len(body) && (body[i] == ' ' || body[i] == '"') {
		i++
	}

	end := i
	for end < len(body) && body[end] != '"' && body[end] != ',' && body[end] != '}' {
		end++
	}

	value := strings.TrimSpace(body[i:end])
	if value == "" {
		return "", false
	}
	return value, true
}

// Escape returns s with backslash and double quote characters escaped for
// embedding in a JSON string literal.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Object builds a flat JSON object literal with a fixed field order.
// The zero value is ready to use.
type Object struct {
	buf    strings.Builder
	fields int
}

func (o *Object) sep() {
	if o.fields == 0 {
		o.buf.WriteByte('{')
	} else {
		o.buf.WriteByte(',')
	}
	o.fields++
}

// Int appends an integer field.
func (o *Object) Int(key string, v int64) *Object {
	o.sep()
	o.buf.WriteByte('"')
	o.buf.WriteString(key)
	o.buf.WriteString(`":`)
	o.buf.WriteString(strconv.FormatInt(v, 10))
	return o
}

// Str appends a string field with the value escaped.
func (o *Object) Str(key, v string) *Object {
	o.sep()
	o.buf.WriteByte('"')
	o.buf.WriteString(key)
	o.buf.WriteString(`":"`)
	o.buf.WriteString(Escape(v))
	o.buf.WriteByte('"')
	return o
}

// Build closes and returns the object literal. An Object with no fields
// builds to "{}".
func (o *Object) Build() string {
	if o.fields == 0 {
		return "{}"
	}
	return o.buf.String() + "}"
}

// Array joins pre-encoded object literals into a JSON array literal.
// An empty slice yields "[]", not an error.
func Array(items []string) string {
	return "[" + strings.Join(items, ",") + "]"
}
