package cmd

import (
	"bytes"
	"strings"
	"testing"

	"arcana/pkg/tarot"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrap("one two three", 7))
	assert.Equal(t, "first\n\nsecond", wrap("first\n\nsecond", 80))
	assert.Equal(t, "averyveryverylongword", wrap("averyveryverylongword", 5))
}

func TestPrintSpread(t *testing.T) {
	color.NoColor = true
	catalog, err := tarot.LoadCatalog()
	require.NoError(t, err)
	yes, no := true, false
	cards, err := tarot.NewDrawer(catalog, nil).ResolveSelection(
		[]tarot.Selection{{ID: 1, Reversed: &no}, {ID: 14, Reversed: &yes}, {ID: 20, Reversed: &no}},
		tarot.SpreadTemporal,
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSpread(&buf, cards, tarot.LanguageEn)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "PAST  The Fool (upright)", lines[0])
	assert.Equal(t, "PRESENT  Death (reversed)", lines[1])

	buf.Reset()
	printSpread(&buf, cards, tarot.LanguageUk)
	assert.Contains(t, buf.String(), "Смерть (перевернута)")
}

func TestDrawCommand_Offline(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	CmdDraw.SetOut(&out)
	CmdDraw.SetArgs([]string{"--no-ai", "--language", "en"})
	require.NoError(t, CmdDraw.Execute())
	assert.Contains(t, out.String(), "Your spread reveals an interesting combination of energies:")

	CmdDraw.SetArgs([]string{"--no-ai", "--spread", "question"})
	assert.Error(t, CmdDraw.Execute())
}
