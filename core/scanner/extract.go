// Package scanner - Text extraction helpers for flat Terraform bodies.
//
// The grammar is deliberately single-level: a block body ends at the first
// closing brace. Bodies that nest blocks inside blocks are truncated, not
// rejected. Resource kinds only ever need one nesting level (for example a
// root_block_device inside an aws_instance).
package scanner

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// keyBoundary keeps "count" from matching inside "account"
const keyBoundary = `(?m)(?:^|[^A-Za-z0-9_])`

var patternCache sync.Map // string -> *regexp.Regexp

func cachedPattern(expr string) *regexp.Regexp {
	if re, ok := patternCache.Load(expr); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(expr)
	patternCache.Store(expr, re)
	return re
}

// ExtractValue returns the value bound to key in body.
// Only the first binding is used. One layer of double quotes is removed and
// the result is trimmed; the value is not otherwise validated.
func ExtractValue(body, key string) (string, bool) {
	re := cachedPattern(keyBoundary + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*([^\n]*)$`)
	m := re.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return unquote(strings.TrimSpace(m[1])), true
}

func unquote(v string) string {
	if !strings.HasPrefix(v, `"`) {
		return v
	}
	v = v[1:]
	if end := strings.IndexByte(v, '"'); end >= 0 {
		v = v[:end]
	}
	return strings.TrimSpace(v)
}

// ExtractBlock returns the inner text of the first "name { ... }" block in body.
// Matching stops at the first closing brace.
func ExtractBlock(body, name string) (string, bool) {
	re := cachedPattern(keyBoundary + regexp.QuoteMeta(name) + `\s*\{([^}]*)\}`)
	m := re.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StringValue returns the value for key, or def when it is absent or empty
func StringValue(body, key, def string) string {
	if v, ok := ExtractValue(body, key); ok && v != "" {
		return v
	}
	return def
}

// IntValue returns the integer value for key, or def when it is absent or
// does not parse as an integer.
func IntValue(body, key string, def int) int {
	v, ok := ExtractValue(body, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(leadingInt(v))
	if err != nil {
		return def
	}
	return n
}

// OptionalInt returns a pointer to the integer value for key, or nil
func OptionalInt(body, key string) *int {
	v, ok := ExtractValue(body, key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(leadingInt(v))
	if err != nil {
		return nil
	}
	return &n
}

// BoolValue reports whether key is bound to the literal true
func BoolValue(body, key string) bool {
	v, _ := ExtractValue(body, key)
	return v == "true"
}

// leadingInt keeps the leading sign and digits so that "20 # GiB" parses as 20
func leadingInt(v string) string {
	end := 0
	for i, r := range v {
		if (r == '-' || r == '+') && i == 0 {
			end = i + 1
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	return v[:end]
}
