// Package elf decodes the file header of ELF objects: the identification
// block and the class dependent body that follows it.
//
// Only the header is read. Program headers, section headers and everything
// they point to are left to other tools.
package elf

import (
	"bytes"
	"errors"
)

const (
	IdentSize  = 16
	body32Size = 36
	body64Size = 48

	// MaxHeaderSize is the largest header any supported class can declare.
	MaxHeaderSize = IdentSize + body64Size
)

// offsets in the identification block
const (
	offClass      = 4
	offData       = 5
	offVersion    = 6
	offOSABI      = 7
	offABIVersion = 8
)

var Magic = []byte{0x7F, 'E', 'L', 'F'}

var (
	ErrMalformed = errors.New("elf: malformed header")
	ErrClass     = errors.New("elf: unsupported class")
	ErrByteOrder = errors.New("elf: unsupported byte order")
	ErrTruncated = errors.New("elf: truncated input")
)

// Ident is the decoded identification block. The seven padding bytes are
// not kept.
type Ident struct {
	Class      Class
	Data       Data
	Version    Version
	OSABI      OSABI
	ABIVersion uint8
}

// Addr is the set of address widths a header body can be instantiated
// with.
type Addr interface {
	uint32 | uint64
}

// Body holds the fields following the identification block. Entry, Phoff
// and Shoff are 4 or 8 bytes wide depending on A.
type Body[A Addr] struct {
	Type      Type
	Machine   Machine
	Version   uint32
	Entry     A
	Phoff     A
	Shoff     A
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

func (b Body[A]) Class() Class {
	var a A
	if _, ok := any(a).(uint32); ok {
		return Class32
	}
	return Class64
}

func (b Body[A]) widen() Body[uint64] {
	return Body[uint64]{
		Type:      b.Type,
		Machine:   b.Machine,
		Version:   b.Version,
		Entry:     uint64(b.Entry),
		Phoff:     uint64(b.Phoff),
		Shoff:     uint64(b.Shoff),
		Flags:     b.Flags,
		Ehsize:    b.Ehsize,
		Phentsize: b.Phentsize,
		Phnum:     b.Phnum,
		Shentsize: b.Shentsize,
		Shnum:     b.Shnum,
		Shstrndx:  b.Shstrndx,
	}
}

// Variant is implemented by Body[uint32] and Body[uint64]. Decode only ever
// stores the value forms; Encode rejects anything else, pointers included.
// Switch on the concrete type to get at the width specific fields.
type Variant interface {
	Class() Class
	widen() Body[uint64]
}

type Header struct {
	Ident
	Body Variant
}

// Widen returns the body with its address fields promoted to 64 bits.
func (h *Header) Widen() Body[uint64] {
	if h.Body == nil {
		return Body[uint64]{}
	}
	return h.Body.widen()
}

func (h *Header) Type() Type {
	return h.Widen().Type
}

func (h *Header) Machine() Machine {
	return h.Widen().Machine
}

// IsObject reports whether buf starts with the ELF magic.
func IsObject(buf []byte) bool {
	return bytes.HasPrefix(buf, Magic)
}
