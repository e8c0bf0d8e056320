package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	DisableColors()

	output := RenderHeader(HeaderInfo{
		Version:  "v0.2.0",
		Tagline:  "Conky configuration generator",
		DataFile: "machine.yaml",
	})

	assert.Contains(t, output, "conkygen")
	assert.Contains(t, output, "v0.2.0")
	assert.Contains(t, output, "Conky configuration generator")
	assert.Contains(t, output, "machine.yaml")
	assert.Contains(t, output, strings.Repeat("━", HeaderWidth))
}

func TestRenderHeader_OptionalFieldsOmitted(t *testing.T) {
	DisableColors()

	output := RenderHeader(HeaderInfo{Version: "dev"})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Len(t, lines, 2, "just the title line and the divider")
	assert.Contains(t, lines[0], "conkygen dev")
}

func TestGradientText(t *testing.T) {
	DisableColors()

	assert.Equal(t, "conkygen", GradientText("conkygen"))
	assert.Empty(t, GradientText(""))
}
