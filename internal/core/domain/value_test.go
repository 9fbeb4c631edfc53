package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/swatch/internal/core/domain"
)

func TestValue_Literal(t *testing.T) {
	tests := []struct {
		name  string
		value domain.Value
		want  string
	}{
		{name: "raw", value: domain.Raw("#fff"), want: "#fff"},
		{name: "raw expression", value: domain.Raw("darken($a, 10%)"), want: "darken($a, 10%)"},
		{name: "string", value: domain.String("Open Sans"), want: `"Open Sans"`},
		{name: "escaped string", value: domain.String(`say "hi" \o/`), want: `"say \"hi\" \\o/"`},
		{name: "newline", value: domain.String("a\nb"), want: `"a\a b"`},
		{name: "number", value: domain.Number(1.5), want: "1.5"},
		{name: "integer", value: domain.Number(10), want: "10"},
		{name: "bool", value: domain.Bool(true), want: "true"},
		{name: "null", value: domain.Null(), want: "null"},
		{
			name:  "list",
			value: domain.List(domain.Raw("1px"), domain.String("x"), domain.Raw("a{b}")),
			want:  `(1px, "x", "a{b}")`,
		},
		{name: "single item list", value: domain.List(domain.Number(1)), want: "(1,)"},
		{name: "empty list", value: domain.List(), want: "()"},
		{
			name: "map",
			value: domain.Map(
				domain.MapEntry{Key: "primary", Value: domain.Raw("#0073aa")},
				domain.MapEntry{Key: "font family", Value: domain.Raw("Open Sans, sans-serif")},
			),
			want: `(primary: #0073aa, "font family": "Open Sans, sans-serif")`,
		},
		{
			name: "nested",
			value: domain.Map(
				domain.MapEntry{Key: "sizes", Value: domain.List(domain.Raw("4px"), domain.Raw("8px"))},
				domain.MapEntry{Key: "dark", Value: domain.Bool(false)},
			),
			want: "(sizes: (4px, 8px), dark: false)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Literal())
		})
	}
}

func TestMap_RepeatedKey(t *testing.T) {
	v := domain.Map(
		domain.MapEntry{Key: "a", Value: domain.Number(1)},
		domain.MapEntry{Key: "b", Value: domain.Number(2)},
		domain.MapEntry{Key: "a", Value: domain.Number(3)},
	)

	assert.Equal(t, domain.KindMap, v.Kind())
	assert.Len(t, v.Entries(), 2)
	assert.Equal(t, "(a: 3, b: 2)", v.Literal())
}

func TestVariables(t *testing.T) {
	vars := domain.Variables{"b": "1"}
	vars.Merge(domain.Variables{"a": "2", "b": "3"})
	vars.MergeValues(map[string]domain.Value{"c": domain.String("x")})

	assert.Equal(t, []string{"a", "b", "c"}, vars.Keys())
	assert.Equal(t, "3", vars["b"])
	assert.Equal(t, `"x"`, vars["c"])

	clone := vars.Clone()
	clone["a"] = "changed"
	assert.Equal(t, "2", vars["a"])

	var empty domain.Variables
	assert.NotNil(t, empty.Clone())
}
