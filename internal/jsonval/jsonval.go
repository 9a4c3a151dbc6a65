// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsonval models an arbitrary JSON document as a tagged variant.
// The lookup endpoint returns bodies of no fixed shape, so the decoded value
// is a union over the six JSON kinds rather than a struct. Values are
// consumed read-only and only for display.
package jsonval

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one node of a decoded JSON document. Exactly the field selected
// by Kind is meaningful; the others hold their zero value.
type Value struct {
	Kind Kind
	Bool bool
	Num  float64
	Str  string
	Arr  []Value
	Obj  map[string]Value
}

// Decode parses a single well-formed JSON document from r. Any document
// shape is accepted; malformed input or trailing content after the document
// is an error.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("expected the body to be json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("expected the body to be json: trailing content after document")
	}
	return fromAny(raw), nil
}

// fromAny converts an encoding/json generic value into the tagged form.
func fromAny(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{Kind: Null}
	case bool:
		return Value{Kind: Bool, Bool: v}
	case float64:
		return Value{Kind: Number, Num: v}
	case string:
		return Value{Kind: String, Str: v}
	case []any:
		arr := make([]Value, len(v))
		for i, elem := range v {
			arr[i] = fromAny(elem)
		}
		return Value{Kind: Array, Arr: arr}
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for k, elem := range v {
			obj[k] = fromAny(elem)
		}
		return Value{Kind: Object, Obj: obj}
	}
	// encoding/json never produces other types for an untyped decode.
	return Value{Kind: Null}
}

// Interface converts the value back to the generic representation that
// encoding/json and yaml marshal from.
func (v Value) Interface() any {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Number:
		return v.Num
	case String:
		return v.Str
	case Array:
		arr := make([]any, len(v.Arr))
		for i, elem := range v.Arr {
			arr[i] = elem.Interface()
		}
		return arr
	case Object:
		obj := make(map[string]any, len(v.Obj))
		for k, elem := range v.Obj {
			obj[k] = elem.Interface()
		}
		return obj
	}
	return nil
}

// EncodeJSON writes the value to w as indented JSON.
func EncodeJSON(w io.Writer, v Value) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v.Interface())
}

// EncodeYAML writes the value to w as a YAML document.
func EncodeYAML(w io.Writer, v Value) error {
	data, err := yaml.Marshal(v.Interface())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// String renders the value on one line for the debug dump. Object keys are
// sorted so the rendering is deterministic.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.Kind {
	case Null:
		b.WriteString("null")
	case Bool:
		fmt.Fprintf(b, "%t", v.Bool)
	case Number:
		// %g drops the trailing ".0" encoding/json's float64 would imply.
		fmt.Fprintf(b, "%g", v.Num)
	case String:
		fmt.Fprintf(b, "%q", v.Str)
	case Array:
		b.WriteString("[")
		for i, elem := range v.Arr {
			if i > 0 {
				b.WriteString(", ")
			}
			elem.render(b)
		}
		b.WriteString("]")
	case Object:
		keys := make([]string, 0, len(v.Obj))
		for k := range v.Obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%q: ", k)
			v.Obj[k].render(b)
		}
		b.WriteString("}")
	}
}
