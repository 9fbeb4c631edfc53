package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// ValueKind enumerates the shapes a compilation variable can take.
type ValueKind uint8

const (
	// KindRaw is an expression handed to the compiler verbatim.
	KindRaw ValueKind = iota
	// KindString is a quoted string literal.
	KindString
	// KindNumber is a unitless number.
	KindNumber
	// KindBool is true or false.
	KindBool
	// KindNull is the null value.
	KindNull
	// KindList is an ordered list of values.
	KindList
	// KindMap is an ordered map of string keys to values.
	KindMap
)

// MapEntry is one key/value pair of a map value. Maps keep insertion order.
type MapEntry struct {
	Key   string
	Value Value
}

// Value is a typed compilation variable.
// Structured values are turned into the compiler's literal syntax by Literal.
type Value struct {
	kind    ValueKind
	text    string
	number  float64
	boolean bool
	items   []Value
	entries []MapEntry
}

// Raw returns a value passed to the compiler unchanged, e.g. "#fff" or "10px".
func Raw(expr string) Value { return Value{kind: KindRaw, text: expr} }

// String returns a quoted string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// List returns a list value.
func List(items ...Value) Value { return Value{kind: KindList, items: items} }

// Map returns a map value with entries in the given order.
// A repeated key keeps its first position and takes the last value.
func Map(entries ...MapEntry) Value {
	out := make([]MapEntry, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Key]; ok {
			out[i].Value = e.Value
			continue
		}
		index[e.Key] = len(out)
		out = append(out, e)
	}
	return Value{kind: KindMap, entries: out}
}

// Kind returns the value's kind.
func (v Value) Kind() ValueKind { return v.kind }

// Entries returns the entries of a map value.
func (v Value) Entries() []MapEntry { return v.entries }

// Items returns the items of a list value.
func (v Value) Items() []Value { return v.items }

// bareToken matches members that are safe to emit unquoted inside a map or
// list: identifiers, numbers with units, percentages and hex colors.
var bareToken = regexp.MustCompile(`^(#[0-9A-Fa-f]{3,8}|-?[0-9]*\.?[0-9]+[A-Za-z%]*|-?[A-Za-z_][A-Za-z0-9_-]*)$`)

// bareKey matches map keys that need no quoting.
var bareKey = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// Literal serializes the value into the compiler's native literal syntax.
// Top level raw values are verbatim. Strings inside maps and lists are bare
// when they are plain tokens and quoted otherwise, so characters such as
// braces, quotes, commas and parentheses are preserved.
func (v Value) Literal() string {
	var b strings.Builder
	v.write(&b, true)
	return b.String()
}

func (v Value) write(b *strings.Builder, top bool) {
	switch v.kind {
	case KindRaw:
		if top || bareToken.MatchString(v.text) {
			b.WriteString(v.text)
			return
		}
		writeQuoted(b, v.text)
	case KindString:
		writeQuoted(b, v.text)
	case KindNumber:
		b.WriteString(strconv.FormatFloat(v.number, 'f', -1, 64))
	case KindBool:
		b.WriteString(strconv.FormatBool(v.boolean))
	case KindNull:
		b.WriteString("null")
	case KindList:
		b.WriteByte('(')
		for i, item := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.write(b, false)
		}
		if len(v.items) == 1 {
			// A single element list needs a trailing comma to stay a list.
			b.WriteByte(',')
		}
		b.WriteByte(')')
	case KindMap:
		b.WriteByte('(')
		for i, e := range v.entries {
			if i > 0 {
				b.WriteString(", ")
			}
			if bareKey.MatchString(e.Key) {
				b.WriteString(e.Key)
			} else {
				writeQuoted(b, e.Key)
			}
			b.WriteString(": ")
			e.Value.write(b, false)
		}
		b.WriteByte(')')
	}
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\a `)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
