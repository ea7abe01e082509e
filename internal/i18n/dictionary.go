package i18n

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errNullRoot = errors.New("dictionary root must be an object")

// Dictionary is one language's decoded content tree. A nil *Dictionary is
// valid and answers every lookup as absent.
type Dictionary struct {
	root map[string]any
}

// NewDictionary wraps an already decoded tree.
func NewDictionary(root map[string]any) *Dictionary {
	if root == nil {
		root = map[string]any{}
	}
	return &Dictionary{root: root}
}

// Parse decodes a JSON document whose root must be an object.
func Parse(raw []byte) (*Dictionary, error) {
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errNullRoot
	}
	return &Dictionary{root: root}, nil
}

// Lookup resolves a dotted path such as "about.work.title".
func (d *Dictionary) Lookup(path string) (any, bool) {
	if d == nil {
		return nil, false
	}
	var cur any = d.root
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Has reports whether path resolves to a non-null value.
func (d *Dictionary) Has(path string) bool {
	_, ok := d.Lookup(path)
	return ok
}

// String returns the value at path when it is a string or a number.
func (d *Dictionary) String(path string) (string, bool) {
	v, ok := d.Lookup(path)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// StringOr returns the string at path or def.
func (d *Dictionary) StringOr(path, def string) string {
	if s, ok := d.String(path); ok && s != "" {
		return s
	}
	return def
}

// Section returns the sub-dictionary at path, or nil.
func (d *Dictionary) Section(path string) *Dictionary {
	v, ok := d.Lookup(path)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &Dictionary{root: m}
}

// Decode decodes the subtree at path into v. It reports false when the path is
// absent or the subtree does not fit v.
func (d *Dictionary) Decode(path string, v any) bool {
	sub, ok := d.Lookup(path)
	if !ok {
		return false
	}
	raw, err := json.Marshal(sub)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
