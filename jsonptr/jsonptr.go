// Package jsonptr implements the small subset of JSON Pointer (RFC 6901)
// used to address fields inside snapshot values.
//
// Decode errors carry pointers such as "/values/0" so callers can tell
// exactly which part of a payload failed to decode.
//
// Reference: https://tools.ietf.org/html/rfc6901
package jsonptr

import (
	"fmt"
	"strconv"
	"strings"
)

// Escape escapes special characters in a key for use in a JSON Pointer.
// Per RFC 6901, "~" becomes "~0" and "/" becomes "~1".
func Escape(key string) string {
	// Order matters: escape ~ first, then /
	key = strings.ReplaceAll(key, "~", "~0")
	key = strings.ReplaceAll(key, "/", "~1")
	return key
}

// Unescape reverses Escape. "~1" becomes "/" and "~0" becomes "~".
func Unescape(key string) string {
	// Order matters: unescape / first, then ~
	key = strings.ReplaceAll(key, "~1", "/")
	key = strings.ReplaceAll(key, "~0", "~")
	return key
}

// Build constructs a JSON Pointer from a sequence of keys.
// Keys can be strings or integers (for array indices).
//
// Examples:
//
//	Build("values", 0)            -> "/values/0"
//	Build("feature/flags", "on")  -> "/feature~1flags/on"
func Build(keys ...any) string {
	if len(keys) == 0 {
		return ""
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		var keyStr string
		switch v := key.(type) {
		case string:
			keyStr = v
		case int:
			keyStr = strconv.Itoa(v)
		default:
			keyStr = fmt.Sprint(v)
		}
		parts = append(parts, Escape(keyStr))
	}

	return "/" + strings.Join(parts, "/")
}

// Parse splits a JSON Pointer into its component keys.
// The empty pointer refers to the whole document and yields no keys.
// Returns an error if the pointer does not start with "/".
func Parse(pointer string) ([]string, error) {
	if pointer == "" {
		return []string{}, nil
	}

	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("invalid JSON Pointer: must start with '/' or be empty")
	}

	pointer = pointer[1:]
	if pointer == "" {
		// Pointer was just "/" - refers to the empty key
		return []string{""}, nil
	}

	parts := strings.Split(pointer, "/")
	keys := make([]string, len(parts))
	for i, part := range parts {
		keys[i] = Unescape(part)
	}

	return keys, nil
}

// Join appends path to base. The second argument may carry a leading "/"
// or not; either way it is appended as a child of base.
//
// Examples:
//
//	Join("/values", "0")  -> "/values/0"
//	Join("", "values")    -> "/values"
//	Join("/a", "/b/c")    -> "/a/b/c"
func Join(base, path string) string {
	if path == "" {
		return base
	}

	path = strings.TrimPrefix(path, "/")

	if base == "" {
		return "/" + path
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}

	return base + "/" + path
}
