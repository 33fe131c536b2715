package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endToEndSource = `package config

var test = Get("TEST")

var test2 = Get("TEST2", Default(11), Type(environ.Int))
// This one is an integer.
//
// .. section:: Sec
`

func TestGenerateEndToEnd(t *testing.T) {
	g := New(Options{Accessor: "Get", Refs: true, Filename: "config.go"})

	doc, err := g.Generate([]byte(endToEndSource))
	require.NoError(t, err)

	assert.Contains(t, doc, "REQUIRED\n--------")
	assert.Contains(t, doc, "``TEST``")
	assert.Contains(t, doc, "Sec\n---")
	assert.Contains(t, doc, "``TEST2``")
	assert.Contains(t, doc, "This one is an integer.")
	assert.Contains(t, doc, "**default**: 11 `(int)`")

	// TEST is required: the REQUIRED block carries no default line.
	requiredBlock := doc[strings.Index(doc, "REQUIRED"):strings.Index(doc, "Sec\n---")]
	assert.Contains(t, requiredBlock, "``TEST``")
	assert.NotContains(t, requiredBlock, "**default**")

	// REQUIRED comes before the named section.
	assert.Less(t, strings.Index(doc, "REQUIRED"), strings.Index(doc, "Sec\n---"))

	// TEST has no documentation block; that is the only warning.
	warnings := g.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnMissingDescription, warnings[0].Kind)
	assert.Equal(t, "TEST", warnings[0].Key)
}

func TestGenerateIsIdempotent(t *testing.T) {
	g := New(Options{Accessor: "Get", Refs: true, Filename: "config.go"})

	first, err := g.Generate([]byte(endToEndSource))
	require.NoError(t, err)
	second, err := g.Generate([]byte(endToEndSource))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateFailsWithNoDocumentOnDuplicate(t *testing.T) {
	g := New(Options{Accessor: "Get"})

	doc, err := g.Generate([]byte(`package config

var a = Get("HOST")
var b = Get("HOST")
`))
	require.Error(t, err)
	assert.Empty(t, doc)
}

func TestGenerateFailsOnSyntaxError(t *testing.T) {
	g := New(Options{Accessor: "Get"})

	_, err := g.Generate([]byte("not go source"))
	assert.Error(t, err)
}

func TestNewDefaultsAccessorName(t *testing.T) {
	g := New(Options{})

	doc, err := g.Generate([]byte(`package config

var host = Get("HOST")
`))
	require.NoError(t, err)
	assert.Contains(t, doc, "``HOST``")
}

func TestMerge(t *testing.T) {
	a := map[string]*EnvCall{"HOST": {Key: "HOST"}}
	b := map[string]*EnvCall{"PORT": {Key: "PORT", Aliases: []string{"TCP_PORT"}}}

	merged, err := Merge(a, b)
	require.NoError(t, err)
	assert.Len(t, merged, 2)
	assert.Contains(t, merged, "HOST")
	assert.Contains(t, merged, "PORT")
}

func TestMergeDuplicateKeyAcrossFiles(t *testing.T) {
	a := map[string]*EnvCall{"HOST": {Key: "HOST", Line: 3}}
	b := map[string]*EnvCall{"HOST": {Key: "HOST", Line: 7}}

	_, err := Merge(a, b)
	require.Error(t, err)

	var dup *DuplicateKeyError
	assert.ErrorAs(t, err, &dup)
}

func TestMergeAliasCollidesWithKey(t *testing.T) {
	a := map[string]*EnvCall{"HOST": {Key: "HOST"}}
	b := map[string]*EnvCall{"ADDR": {Key: "ADDR", Aliases: []string{"HOST"}}}

	_, err := Merge(a, b)
	require.Error(t, err)
}
