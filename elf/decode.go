package elf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Decode validates buf and decodes the file header at its start. buf may be
// longer than the header; the remaining bytes are not looked at.
//
// The returned header holds copies of the decoded values and no reference to
// buf.
func Decode(buf []byte) (*Header, error) {
	id, err := DecodeIdent(buf)
	if err != nil {
		return nil, err
	}
	size := id.Class.HeaderSize()
	if len(buf) < size {
		return nil, fmt.Errorf("%w: %s header needs %d bytes, got %d", ErrTruncated, id.Class, size, len(buf))
	}
	order, err := id.Data.ByteOrder()
	if err != nil {
		return nil, err
	}
	c := cursor{
		buf:   buf[:size],
		off:   IdentSize,
		order: order,
	}
	h := Header{Ident: id}
	switch id.Class {
	case Class32:
		h.Body, err = decodeBody[uint32](&c)
	case Class64:
		h.Body, err = decodeBody[uint64](&c)
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// DecodeIdent validates the magic and decodes the identification block.
func DecodeIdent(buf []byte) (Ident, error) {
	var id Ident
	if err := validate(buf); err != nil {
		return id, err
	}
	id.Class = Class(buf[offClass])
	if !id.Class.valid() {
		return id, fmt.Errorf("%w: %d", ErrClass, buf[offClass])
	}
	id.Data = Data(buf[offData])
	if !id.Data.valid() {
		return id, fmt.Errorf("%w: %d", ErrByteOrder, buf[offData])
	}
	id.Version = Version(buf[offVersion])
	id.OSABI = OSABI(buf[offOSABI])
	id.ABIVersion = buf[offABIVersion]
	return id, nil
}

// ReadHeader reads at most MaxHeaderSize bytes from r and decodes them. For
// 32 bits objects, a few bytes past the header may be consumed.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, MaxHeaderSize)
	n, err := io.ReadFull(r, buf)
	switch err {
	case nil, io.ErrUnexpectedEOF, io.EOF:
	default:
		return nil, err
	}
	return Decode(buf[:n])
}

func validate(buf []byte) error {
	n := len(Magic)
	if len(buf) < n {
		n = len(buf)
	}
	if !bytes.Equal(buf[:n], Magic[:n]) {
		return fmt.Errorf("%w: invalid magic %x", ErrMalformed, buf[:n])
	}
	if len(buf) < IdentSize {
		return fmt.Errorf("%w: identification needs %d bytes, got %d", ErrTruncated, IdentSize, len(buf))
	}
	return nil
}

func decodeBody[A Addr](c *cursor) (Body[A], error) {
	var b Body[A]
	b.Type = Type(c.u16())
	b.Machine = Machine(c.u16())
	b.Version = c.u32()
	b.Entry = addr[A](c)
	b.Phoff = addr[A](c)
	b.Shoff = addr[A](c)
	b.Flags = c.u32()
	b.Ehsize = c.u16()
	b.Phentsize = c.u16()
	b.Phnum = c.u16()
	b.Shentsize = c.u16()
	b.Shnum = c.u16()
	b.Shstrndx = c.u16()
	return b, c.err
}

func addr[A Addr](c *cursor) A {
	var a A
	switch any(a).(type) {
	case uint32:
		return A(c.u32())
	default:
		return A(c.u64())
	}
}

// cursor reads fixed size fields from buf. The first read that would go past
// the end sets err; every read after that returns zero.
type cursor struct {
	buf   []byte
	off   int
	order binary.ByteOrder
	err   error
}

func (c *cursor) next(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n > len(c.buf)-c.off {
		c.err = fmt.Errorf("%w: field at offset %d needs %d bytes, %d left", ErrTruncated, c.off, n, len(c.buf)-c.off)
		return nil
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b
}

func (c *cursor) u16() uint16 {
	if b := c.next(2); b != nil {
		return c.order.Uint16(b)
	}
	return 0
}

func (c *cursor) u32() uint32 {
	if b := c.next(4); b != nil {
		return c.order.Uint32(b)
	}
	return 0
}

func (c *cursor) u64() uint64 {
	if b := c.next(8); b != nil {
		return c.order.Uint64(b)
	}
	return 0
}
