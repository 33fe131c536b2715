package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		literal  string
		expected string
		known    bool
	}{
		{literal: "int", expected: "int", known: true},
		{literal: "float", expected: "float", known: true},
		{literal: "str", expected: "str", known: true},
		{literal: "bool", expected: "bool", known: true},
		{literal: "Int", expected: "int", known: true},
		{literal: "environ.Int", expected: "int", known: true},
		{literal: "environ.Bool", expected: "bool", known: true},
		{literal: "strconv.ParseBool", expected: "bool", known: true},
		{literal: "bool_parser", expected: "bool", known: true},
		{literal: "environ.String", expected: "str", known: true},
		{literal: "mystery", expected: "mystery", known: false},
		{literal: "pkg.Custom", expected: "pkg.Custom", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, known := normalizeType(tt.literal)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestTypeDefaultsToString(t *testing.T) {
	call := &EnvCall{Key: "K"}
	assert.Equal(t, "str", call.Type())
}

func TestTypeDirectiveOverridesLiteral(t *testing.T) {
	call := &EnvCall{Key: "K", TypeLiteral: "environ.Int", Desc: &Description{Type: "seconds"}}
	assert.Equal(t, "seconds", call.Type())
}

func TestSectionForRequiredCall(t *testing.T) {
	call := &EnvCall{Key: "K", Desc: &Description{Section: "Sec"}}
	assert.True(t, call.IsRequired())
	assert.Equal(t, requiredSection, call.Section())
}

func TestSectionEmptyWithoutDirective(t *testing.T) {
	call := &EnvCall{Key: "K", DefaultLiteral: "1"}
	assert.Equal(t, "", call.Section())
}
