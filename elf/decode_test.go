package elf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample64() []byte {
	buf := []byte{0x7F, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	buf = binary.LittleEndian.AppendUint16(buf, 2)
	buf = binary.LittleEndian.AppendUint16(buf, 0x3E)
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = binary.LittleEndian.AppendUint64(buf, 0x401000)
	buf = binary.LittleEndian.AppendUint64(buf, 64)
	buf = binary.LittleEndian.AppendUint64(buf, 0x3a08)
	buf = binary.LittleEndian.AppendUint32(buf, 0)
	for _, v := range []uint16{64, 56, 11, 64, 30, 29} {
		buf = binary.LittleEndian.AppendUint16(buf, v)
	}
	return buf
}

func sample32() []byte {
	buf := []byte{0x7F, 'E', 'L', 'F', 1, 1, 1, 3, 0, 0, 0, 0, 0, 0, 0, 0}
	buf = binary.LittleEndian.AppendUint16(buf, 1)
	buf = binary.LittleEndian.AppendUint16(buf, 3)
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = binary.LittleEndian.AppendUint32(buf, 0)
	buf = binary.LittleEndian.AppendUint32(buf, 0)
	buf = binary.LittleEndian.AppendUint32(buf, 0x1f4)
	buf = binary.LittleEndian.AppendUint32(buf, 0)
	for _, v := range []uint16{52, 0, 0, 40, 12, 11} {
		buf = binary.LittleEndian.AppendUint16(buf, v)
	}
	return buf
}

func TestDecode64(t *testing.T) {
	h, err := Decode(sample64())
	require.NoError(t, err)

	assert.Equal(t, Class64, h.Class)
	assert.Equal(t, LittleEndian, h.Data)
	assert.Equal(t, VersionCurrent, h.Version)
	assert.Equal(t, OSABISysV, h.OSABI)
	assert.Equal(t, TypeExecutable, h.Type())
	assert.Equal(t, MachineX86_64, h.Machine())

	b, ok := h.Body.(Body[uint64])
	require.True(t, ok, "expected 64 bits body, got %T", h.Body)
	want := Body[uint64]{
		Type:      TypeExecutable,
		Machine:   MachineX86_64,
		Version:   1,
		Entry:     0x401000,
		Phoff:     64,
		Shoff:     0x3a08,
		Ehsize:    64,
		Phentsize: 56,
		Phnum:     11,
		Shentsize: 64,
		Shnum:     30,
		Shstrndx:  29,
	}
	assert.Equal(t, want, b)
}

func TestDecode32(t *testing.T) {
	h, err := Decode(sample32())
	require.NoError(t, err)

	assert.Equal(t, Class32, h.Class)
	assert.Equal(t, OSABILinux, h.OSABI)

	b, ok := h.Body.(Body[uint32])
	require.True(t, ok, "expected 32 bits body, got %T", h.Body)
	assert.Equal(t, TypeRelocatable, b.Type)
	assert.Equal(t, Machine386, b.Machine)
	assert.Equal(t, uint32(0x1f4), b.Shoff)
	assert.Equal(t, uint16(52), b.Ehsize)
	assert.Equal(t, uint16(40), b.Shentsize)
	assert.Equal(t, uint16(12), b.Shnum)
	assert.Equal(t, uint16(11), b.Shstrndx)
	assert.Equal(t, Class32, b.Class())

	w := h.Widen()
	assert.Equal(t, uint64(0x1f4), w.Shoff)
	assert.Equal(t, b.Shstrndx, w.Shstrndx)
}

func TestDecodeErrors(t *testing.T) {
	data := []struct {
		Name string
		Edit func([]byte) []byte
		Err  error
	}{
		{
			Name: "bad-magic",
			Edit: func(b []byte) []byte { b[0] = 0; return b },
			Err:  ErrMalformed,
		},
		{
			Name: "bad-magic-short",
			Edit: func(b []byte) []byte { b[1] = 'e'; return b[:6] },
			Err:  ErrMalformed,
		},
		{
			Name: "class-zero",
			Edit: func(b []byte) []byte { b[4] = 0; return b },
			Err:  ErrClass,
		},
		{
			Name: "class-three",
			Edit: func(b []byte) []byte { b[4] = 3; return b },
			Err:  ErrClass,
		},
		{
			Name: "byte-order-zero",
			Edit: func(b []byte) []byte { b[5] = 0; return b },
			Err:  ErrByteOrder,
		},
		{
			Name: "byte-order-big",
			Edit: func(b []byte) []byte { b[5] = 2; return b },
			Err:  ErrByteOrder,
		},
		{
			Name: "short-ident",
			Edit: func(b []byte) []byte { return b[:10] },
			Err:  ErrTruncated,
		},
		{
			Name: "short-body",
			Edit: func(b []byte) []byte { return b[:IdentSize+4] },
			Err:  ErrTruncated,
		},
		{
			Name: "one-byte-short",
			Edit: func(b []byte) []byte { return b[:len(b)-1] },
			Err:  ErrTruncated,
		},
		{
			Name: "empty",
			Edit: func(b []byte) []byte { return b[:0] },
			Err:  ErrTruncated,
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			h, err := Decode(d.Edit(sample64()))
			assert.Nil(t, h)
			assert.ErrorIs(t, err, d.Err)
		})
	}
}

func TestDecodeMagicMismatch(t *testing.T) {
	for i := range Magic {
		buf := sample64()
		buf[i] ^= 0xFF
		_, err := Decode(buf)
		assert.ErrorIs(t, err, ErrMalformed, "byte %d", i)
	}
}

func TestDecodeEveryPrefix(t *testing.T) {
	for _, buf := range [][]byte{sample32(), sample64()} {
		for i := 0; i < len(buf); i++ {
			var (
				h   *Header
				err error
			)
			require.NotPanics(t, func() { h, err = Decode(buf[:i]) })
			assert.Nil(t, h)
			assert.ErrorIs(t, err, ErrTruncated, "prefix of %d bytes", i)
		}
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	buf := append(sample32(), bytes.Repeat([]byte{0xAA}, 128)...)
	h, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, Class32, h.Class)
}

func TestDecodeDeterministic(t *testing.T) {
	buf := sample64()
	orig := bytes.Clone(buf)

	h1, err1 := Decode(buf)
	h2, err2 := Decode(buf)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, orig, buf)
}

func TestDecodeUnknownCodes(t *testing.T) {
	buf := sample64()
	binary.LittleEndian.PutUint16(buf[16:], 0xFE10)
	binary.LittleEndian.PutUint16(buf[18:], 0x1234)
	buf[offOSABI] = 200

	h, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, Type(0xFE10), h.Type())
	assert.False(t, h.Type().Known())
	assert.Equal(t, Machine(0x1234), h.Machine())
	assert.False(t, h.Machine().Known())
	assert.Equal(t, OSABI(200), h.OSABI)
	assert.False(t, h.OSABI.Known())
}

func TestDecodeIdent(t *testing.T) {
	buf := sample64()[:IdentSize]
	buf[offABIVersion] = 2
	id, err := DecodeIdent(buf)
	require.NoError(t, err)
	assert.Equal(t, Ident{Class: Class64, Data: LittleEndian, Version: VersionCurrent, ABIVersion: 2}, id)

	buf[offData] = 2
	id, err = DecodeIdent(buf)
	require.NoError(t, err)
	assert.Equal(t, BigEndian, id.Data)
}

func TestReadHeader(t *testing.T) {
	h, err := ReadHeader(bytes.NewReader(sample32()))
	require.NoError(t, err)
	assert.Equal(t, Class32, h.Class)

	_, err = ReadHeader(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = ReadHeader(bytes.NewReader(sample64()[:40]))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestIsObject(t *testing.T) {
	assert.True(t, IsObject(sample64()))
	assert.True(t, IsObject(Magic))
	assert.False(t, IsObject(Magic[:3]))
	assert.False(t, IsObject([]byte("!<arch>\n")))
	assert.False(t, IsObject(nil))
}
