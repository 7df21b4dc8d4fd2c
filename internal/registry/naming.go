package registry

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RequestContextPrefix marks attribute names that mirror request-context
// fields. It is removed from required context attribute names.
const RequestContextPrefix = "ReqCtx_"

// FieldName converts an event name into the key events are indexed by.
// Whitespace-separated words are joined in lower camel case:
// "Login" → "login", "Transfer Funds" → "transferFunds".
// Queries must pass event names through FieldName.
func FieldName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		b.WriteString(w[size:])
	}
	return b.String()
}

// SanitizeName removes '.' and then '/' from an attribute name, producing a
// key usable as a structured field name.
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, ".", "")
	return strings.ReplaceAll(name, "/", "")
}
