// Package manifest decodes Info.plist payloads into a generic key/value tree.
//
// Decoding is schema-free on purpose: manifests carry many keys this tool does
// not recognize, and the evaluator must distinguish "key absent" from "key set
// to false". Accessors therefore report presence explicitly instead of
// returning zero values.
package manifest

import (
	"fmt"

	"howett.net/plist"
)

// Tree is one decoded manifest: string keys mapping to booleans, strings,
// numbers, or nested dictionaries. Unrecognized keys are carried untouched.
type Tree map[string]interface{}

// DecodeError reports that a single manifest member could not be decoded.
// It is non-fatal for the run; callers skip the member and continue.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses one manifest payload, binary or XML plist, into a Tree.
// It never mutates shared state; each call is independent.
func Decode(path string, data []byte) (Tree, error) {
	var tree Tree
	if _, err := plist.Unmarshal(data, &tree); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return tree, nil
}

// Dict returns the nested dictionary at key. The second result is false when
// the key is absent or holds a non-dictionary value.
func (t Tree) Dict(key string) (Tree, bool) {
	switch v := t[key].(type) {
	case Tree:
		return v, true
	case map[string]interface{}:
		return Tree(v), true
	default:
		return nil, false
	}
}

// Bool returns the boolean at key, or nil when the key is absent or not a
// boolean. The nil/false distinction is load-bearing for override resolution.
func (t Tree) Bool(key string) *bool {
	if v, ok := t[key].(bool); ok {
		return &v
	}
	return nil
}

// String returns the string at key, or nil when absent or not a string.
func (t Tree) String(key string) *string {
	if v, ok := t[key].(string); ok {
		return &v
	}
	return nil
}
