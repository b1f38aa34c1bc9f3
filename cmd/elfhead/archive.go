package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/midbel/cli"
	"github.com/midbel/elfhead"
	"github.com/olekukonko/tablewriter"
)

func runArchive(cmd *cli.Command, args []string) error {
	var (
		config = cmd.Flag.String("c", "", "configuration file")
		format = cmd.Flag.String("f", "", "output format (text, json)")
	)
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	if cmd.Flag.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one archive, got %d arguments", elfhead.ErrUsage, cmd.Flag.NArg())
	}
	cfg, err := loadConfig(*config, *format)
	if err != nil {
		return err
	}
	ms, err := elfhead.OpenArchive(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	if cfg.Format == elfhead.FormatJSON {
		return printMembersJSON(os.Stdout, ms)
	}
	printMembers(os.Stdout, ms)
	return nil
}

func printMembers(w io.Writer, ms []elfhead.Member) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"member", "size", "modified", "class", "type", "machine", "shnum"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, m := range ms {
		row := []string{
			m.Name,
			strconv.FormatInt(m.Size, 10),
			m.ModTime.UTC().Format(time.RFC3339),
		}
		switch {
		case !m.Object:
			row = append(row, "-", "not an object", "-", "-")
		case m.Err != nil:
			row = append(row, "-", m.Err.Error(), "-", "-")
		default:
			h := m.Header
			row = append(row, h.Class.String(), h.Type().String(), h.Machine().String(), strconv.Itoa(int(h.Widen().Shnum)))
		}
		table.Append(row)
	}
	table.Render()
}

func printMembersJSON(w io.Writer, ms []elfhead.Member) error {
	type member struct {
		Name   string `json:"name"`
		Size   int64  `json:"size"`
		Object bool   `json:"object"`
		Header *view  `json:"header,omitempty"`
		Error  string `json:"error,omitempty"`
	}
	list := make([]member, 0, len(ms))
	for _, m := range ms {
		e := member{
			Name:   m.Name,
			Size:   m.Size,
			Object: m.Object,
		}
		if m.Err != nil {
			e.Error = m.Err.Error()
		} else {
			v := makeView(m.Header)
			e.Header = &v
		}
		list = append(list, e)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
