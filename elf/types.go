package elf

import (
	"encoding/binary"
	"fmt"
)

// Class is the address width selector found at EI_CLASS.
type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

func (c Class) valid() bool {
	return c == Class32 || c == Class64
}

// HeaderSize gives the length of the identification block plus the body for
// the class. It returns 0 for an unknown class.
func (c Class) HeaderSize() int {
	switch c {
	case Class32:
		return IdentSize + body32Size
	case Class64:
		return IdentSize + body64Size
	default:
		return 0
	}
}

// Data is the byte order of the multi-byte fields (EI_DATA).
type Data uint8

const (
	LittleEndian Data = 1
	BigEndian    Data = 2
)

func (d Data) String() string {
	switch d {
	case LittleEndian:
		return "little endian"
	case BigEndian:
		return "big endian"
	default:
		return fmt.Sprintf("Data(%d)", uint8(d))
	}
}

func (d Data) valid() bool {
	return d == LittleEndian || d == BigEndian
}

// ByteOrder returns the decoder for d. Only little endian is supported.
func (d Data) ByteOrder() (binary.ByteOrder, error) {
	switch d {
	case LittleEndian:
		return binary.LittleEndian, nil
	case BigEndian:
		return nil, fmt.Errorf("%w: %s not implemented", ErrByteOrder, d)
	default:
		return nil, fmt.Errorf("%w: %d", ErrByteOrder, uint8(d))
	}
}

type Version uint8

const VersionCurrent Version = 1

func (v Version) String() string {
	if v == VersionCurrent {
		return "1 (current)"
	}
	return fmt.Sprintf("%d", uint8(v))
}

// OSABI identifies the target operating system ABI. The set of values is
// open: anything outside the table below is kept as is.
type OSABI uint8

const (
	OSABISysV       OSABI = 0
	OSABIHPUX       OSABI = 1
	OSABINetBSD     OSABI = 2
	OSABILinux      OSABI = 3
	OSABISolaris    OSABI = 6
	OSABIAIX        OSABI = 7
	OSABIIrix       OSABI = 8
	OSABIFreeBSD    OSABI = 9
	OSABITru64      OSABI = 10
	OSABIModesto    OSABI = 11
	OSABIOpenBSD    OSABI = 12
	OSABIArmEABI    OSABI = 64
	OSABIArm        OSABI = 97
	OSABIStandalone OSABI = 255
)

var osabiNames = map[OSABI]string{
	OSABISysV:       "UNIX - System V",
	OSABIHPUX:       "HP-UX",
	OSABINetBSD:     "NetBSD",
	OSABILinux:      "Linux",
	OSABISolaris:    "Solaris",
	OSABIAIX:        "AIX",
	OSABIIrix:       "IRIX",
	OSABIFreeBSD:    "FreeBSD",
	OSABITru64:      "Tru64",
	OSABIModesto:    "Novell Modesto",
	OSABIOpenBSD:    "OpenBSD",
	OSABIArmEABI:    "ARM EABI",
	OSABIArm:        "ARM",
	OSABIStandalone: "Standalone",
}

func (o OSABI) Known() bool {
	_, ok := osabiNames[o]
	return ok
}

func (o OSABI) String() string {
	if n, ok := osabiNames[o]; ok {
		return n
	}
	return fmt.Sprintf("OSABI(%d)", uint8(o))
}

// Type is the object file type (e_type). Values not listed are
// processor or OS specific and are kept verbatim.
type Type uint16

const (
	TypeNone         Type = 0
	TypeRelocatable  Type = 1
	TypeExecutable   Type = 2
	TypeSharedObject Type = 3
	TypeCore         Type = 4
)

var typeNames = map[Type]string{
	TypeNone:         "none",
	TypeRelocatable:  "relocatable file",
	TypeExecutable:   "executable file",
	TypeSharedObject: "shared object",
	TypeCore:         "core file",
}

func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ProcessorSpecific(%#04x)", uint16(t))
}

// Machine is the target architecture (e_machine).
type Machine uint16

const (
	MachineNone      Machine = 0
	MachineSPARC     Machine = 2
	Machine386       Machine = 3
	Machine68K       Machine = 4
	MachineMIPS      Machine = 8
	MachinePPC       Machine = 20
	MachinePPC64     Machine = 21
	MachineS390      Machine = 22
	MachineARM       Machine = 40
	MachineSH        Machine = 42
	MachineSPARCV9   Machine = 43
	MachineIA64      Machine = 50
	MachineX86_64    Machine = 62
	MachineAArch64   Machine = 183
	MachineRISCV     Machine = 243
	MachineBPF       Machine = 247
	MachineLoongArch Machine = 258
)

var machineNames = map[Machine]string{
	MachineNone:      "none",
	MachineSPARC:     "SPARC",
	Machine386:       "Intel 80386",
	Machine68K:       "Motorola 68000",
	MachineMIPS:      "MIPS",
	MachinePPC:       "PowerPC",
	MachinePPC64:     "PowerPC64",
	MachineS390:      "IBM S/390",
	MachineARM:       "ARM",
	MachineSH:        "SuperH",
	MachineSPARCV9:   "SPARC v9",
	MachineIA64:      "Intel IA-64",
	MachineX86_64:    "Advanced Micro Devices X86-64",
	MachineAArch64:   "AArch64",
	MachineRISCV:     "RISC-V",
	MachineBPF:       "Linux BPF",
	MachineLoongArch: "LoongArch",
}

func (m Machine) Known() bool {
	_, ok := machineNames[m]
	return ok
}

func (m Machine) String() string {
	if n, ok := machineNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", uint16(m))
}
