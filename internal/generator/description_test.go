package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDescription(t *testing.T) {
	desc := parseDescription(`The port the server listens on.

.. default:: 8080
.. type:: int
.. section:: Server

Second paragraph.`)

	assert.Equal(t, "8080", desc.Default)
	assert.Equal(t, "int", desc.Type)
	assert.Equal(t, "Server", desc.Section)
	assert.Equal(t, []string{
		"The port the server listens on.",
		"",
		"",
		"Second paragraph.",
	}, desc.Lines)
}

func TestParseDescriptionProseOnly(t *testing.T) {
	desc := parseDescription("Just prose.")

	assert.Equal(t, []string{"Just prose."}, desc.Lines)
	assert.Empty(t, desc.Default)
	assert.Empty(t, desc.Type)
	assert.Empty(t, desc.Section)
}

func TestParseDescriptionRepeatedDirectiveLastWins(t *testing.T) {
	desc := parseDescription(".. default:: 1\n.. default:: 2")

	assert.Equal(t, "2", desc.Default)
	assert.Empty(t, desc.Lines)
}

func TestParseDescriptionTrimsValue(t *testing.T) {
	desc := parseDescription(".. section::    My Little Section   ")

	assert.Equal(t, "My Little Section", desc.Section)
}
