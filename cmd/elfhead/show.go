package main

import (
	"fmt"
	"io"
	"os"
	"text/template"

	jsoniter "github.com/json-iterator/go"
	"github.com/midbel/cli"
	"github.com/midbel/elfhead"
	"github.com/midbel/elfhead/elf"
	"github.com/midbel/elfhead/text"
)

const report = `
Class                      : {{.Class}}
Data                       : {{.Data}}
Version                    : {{.Version}}
OS/ABI                     : {{.OSABI}}
ABI Version                : {{.ABIVersion}}
Type                       : {{.Type}}
Machine                    : {{.Machine}}{{with .Arch}} ({{.}}){{end}}
Version                    : {{printf "%#x" .Body.Version}}
Entry point address        : {{printf "%#x" .Body.Entry}}
Start of program headers   : {{.Body.Phoff}} (bytes into file)
Start of section headers   : {{.Body.Shoff}} (bytes into file)
Flags                      : {{printf "%#x" .Body.Flags}}
Size of this header        : {{.Body.Ehsize}} (bytes)
Size of program headers    : {{.Body.Phentsize}} (bytes)
Number of program headers  : {{.Body.Phnum}}
Size of section headers    : {{.Body.Shentsize}} (bytes)
Number of section headers  : {{.Body.Shnum}}
Section header string index: {{.Body.Shstrndx}}
`

var reportTemplate = template.Must(template.New("report").Parse(report))

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func runShow(cmd *cli.Command, args []string) error {
	var (
		config = cmd.Flag.String("c", "", "configuration file")
		format = cmd.Flag.String("f", "", "output format (text, json)")
	)
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	file, err := elfhead.CheckArgs(cmd.Flag.Args())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(*config, *format)
	if err != nil {
		return err
	}
	h, err := elfhead.Load(file)
	if err != nil {
		return err
	}
	return printHeader(os.Stdout, h, cfg)
}

func printHeader(w io.Writer, h *elf.Header, cfg elfhead.Config) error {
	if cfg.Format == elfhead.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(makeView(h))
	}
	ctx := struct {
		elf.Ident
		Type    elf.Type
		Machine elf.Machine
		Arch    string
		Body    elf.Body[uint64]
	}{
		Ident:   h.Ident,
		Type:    h.Type(),
		Machine: h.Machine(),
		Body:    h.Widen(),
	}
	if a := elfhead.ArchString(ctx.Machine, h.Class); a != "noarch" {
		ctx.Arch = a
	}
	if err := text.Execute(reportTemplate, w, ctx); err != nil {
		return err
	}
	return text.Paragraph(w, notes(h), cfg.Wrap)
}

func notes(h *elf.Header) []string {
	var ns []string
	if t := h.Type(); !t.Known() {
		ns = append(ns, fmt.Sprintf("Type %#04x is not a standard object type; it is reported as a processor or OS specific value.", uint16(t)))
	}
	if m := h.Machine(); !m.Known() {
		ns = append(ns, fmt.Sprintf("Machine %d is not in the table of known architectures; the raw code is reported as is.", uint16(m)))
	}
	if !h.OSABI.Known() {
		ns = append(ns, fmt.Sprintf("OS/ABI %d is not a known ABI identifier.", uint8(h.OSABI)))
	}
	if h.Version != elf.VersionCurrent {
		ns = append(ns, fmt.Sprintf("Identification version %d differs from the current version.", uint8(h.Version)))
	}
	return ns
}

type view struct {
	Class       string `json:"class"`
	Data        string `json:"data"`
	Version     uint8  `json:"version"`
	OSABI       string `json:"osabi"`
	OSABICode   uint8  `json:"osabi_code"`
	ABIVersion  uint8  `json:"abi_version"`
	Type        string `json:"type"`
	TypeCode    uint16 `json:"type_code"`
	Machine     string `json:"machine"`
	MachineCode uint16 `json:"machine_code"`
	Arch        string `json:"arch"`
	ObjVersion  uint32 `json:"object_version"`
	Entry       uint64 `json:"entry"`
	Phoff       uint64 `json:"phoff"`
	Shoff       uint64 `json:"shoff"`
	Flags       uint32 `json:"flags"`
	Ehsize      uint16 `json:"ehsize"`
	Phentsize   uint16 `json:"phentsize"`
	Phnum       uint16 `json:"phnum"`
	Shentsize   uint16 `json:"shentsize"`
	Shnum       uint16 `json:"shnum"`
	Shstrndx    uint16 `json:"shstrndx"`
}

func makeView(h *elf.Header) view {
	b := h.Widen()
	return view{
		Class:       h.Class.String(),
		Data:        h.Data.String(),
		Version:     uint8(h.Version),
		OSABI:       h.OSABI.String(),
		OSABICode:   uint8(h.OSABI),
		ABIVersion:  h.ABIVersion,
		Type:        b.Type.String(),
		TypeCode:    uint16(b.Type),
		Machine:     b.Machine.String(),
		MachineCode: uint16(b.Machine),
		Arch:        elfhead.ArchString(b.Machine, h.Class),
		ObjVersion:  b.Version,
		Entry:       b.Entry,
		Phoff:       b.Phoff,
		Shoff:       b.Shoff,
		Flags:       b.Flags,
		Ehsize:      b.Ehsize,
		Phentsize:   b.Phentsize,
		Phnum:       b.Phnum,
		Shentsize:   b.Shentsize,
		Shnum:       b.Shnum,
		Shstrndx:    b.Shstrndx,
	}
}
