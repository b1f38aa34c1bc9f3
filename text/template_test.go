package text

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	const tpl = `
Class : {{.Class}}
{{if .Extra}}Extra : {{.Extra}}{{end}}

Entry : {{printf "%#x" .Entry}}
`
	ctx := struct {
		Class string
		Extra string
		Entry uint64
	}{
		Class: "ELF64",
		Entry: 0x401000,
	}
	var str strings.Builder
	err := Execute(template.Must(template.New("t").Parse(tpl)), &str, ctx)
	require.NoError(t, err)
	assert.Equal(t, "Class : ELF64\nEntry : 0x401000\n", str.String())
}

func TestExecuteError(t *testing.T) {
	tpl := template.Must(template.New("t").Parse("{{.Missing}}"))
	var str strings.Builder
	err := Execute(tpl, &str, struct{}{})
	assert.Error(t, err)
	assert.Empty(t, str.String())
}

func TestParagraph(t *testing.T) {
	var str strings.Builder
	require.NoError(t, Paragraph(&str, nil, true))
	assert.Empty(t, str.String())

	require.NoError(t, Paragraph(&str, []string{"type 0xff00 is processor specific.", "machine 9999 is not known."}, false))
	assert.Equal(t, "\ntype 0xff00 is processor specific. machine 9999 is not known.\n", str.String())

	str.Reset()
	long := strings.Repeat("unrecognised code kept as is. ", 10)
	require.NoError(t, Paragraph(&str, []string{long}, true))
	assert.True(t, strings.HasPrefix(str.String(), "\n"))
	assert.True(t, strings.HasSuffix(str.String(), "\n"))
	assert.Equal(t, strings.Fields(long), strings.Fields(str.String()))
}
