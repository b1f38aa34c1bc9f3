package elf

import (
	"encoding/binary"
	"fmt"
)

// Encode writes h in its on-disk form. Only little endian headers can be
// encoded.
func Encode(h *Header) ([]byte, error) {
	if h.Body == nil {
		return nil, fmt.Errorf("%w: missing body", ErrMalformed)
	}
	if c := h.Body.Class(); c != h.Class {
		return nil, fmt.Errorf("%w: ident says %s, body is %s", ErrClass, h.Class, c)
	}
	bo, err := h.Data.ByteOrder()
	if err != nil {
		return nil, err
	}
	order, ok := bo.(binary.AppendByteOrder)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrByteOrder, h.Data)
	}
	buf := make([]byte, IdentSize, h.Class.HeaderSize())
	copy(buf, Magic)
	buf[offClass] = byte(h.Class)
	buf[offData] = byte(h.Data)
	buf[offVersion] = byte(h.Version)
	buf[offOSABI] = byte(h.OSABI)
	buf[offABIVersion] = h.ABIVersion

	switch b := h.Body.(type) {
	case Body[uint32]:
		buf = appendBody(buf, order, b)
	case Body[uint64]:
		buf = appendBody(buf, order, b)
	default:
		return nil, fmt.Errorf("%w: body of type %T", ErrMalformed, h.Body)
	}
	return buf, nil
}

func (h *Header) MarshalBinary() ([]byte, error) {
	return Encode(h)
}

func appendBody[A Addr](buf []byte, order binary.AppendByteOrder, b Body[A]) []byte {
	buf = order.AppendUint16(buf, uint16(b.Type))
	buf = order.AppendUint16(buf, uint16(b.Machine))
	buf = order.AppendUint32(buf, b.Version)
	for _, a := range []A{b.Entry, b.Phoff, b.Shoff} {
		if b.Class() == Class32 {
			buf = order.AppendUint32(buf, uint32(a))
		} else {
			buf = order.AppendUint64(buf, uint64(a))
		}
	}
	buf = order.AppendUint32(buf, b.Flags)
	for _, v := range []uint16{b.Ehsize, b.Phentsize, b.Phnum, b.Shentsize, b.Shnum, b.Shstrndx} {
		buf = order.AppendUint16(buf, v)
	}
	return buf
}
