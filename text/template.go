// Package text renders reports for terminals.
package text

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/midbel/textwrap"
)

// Execute runs tpl with ctx and copies its output to w without the blank
// lines left by actions.
func Execute(tpl *template.Template, w io.Writer, ctx interface{}) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return err
	}
	scan := bufio.NewScanner(&buf)
	for scan.Scan() {
		line := strings.TrimRight(scan.Text(), " \t")
		if line == "" {
			continue
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return scan.Err()
}

// Paragraph writes notes as one paragraph preceded by an empty line. When
// wrap is set, the paragraph is folded to the terminal width.
func Paragraph(w io.Writer, notes []string, wrap bool) error {
	if len(notes) == 0 {
		return nil
	}
	str := strings.Join(notes, " ")
	if wrap {
		str = textwrap.Wrap(str)
	}
	_, err := io.WriteString(w, "\n"+strings.TrimRight(str, "\n")+"\n")
	return err
}
