package elfhead

import (
	"github.com/midbel/elfhead/elf"
)

// ArchString gives the short architecture name used by package managers for
// the machine and class of an object.
func ArchString(m elf.Machine, c elf.Class) string {
	switch m {
	case elf.Machine386:
		return "i386"
	case elf.MachineX86_64:
		return "x86_64"
	case elf.MachineARM:
		return "arm"
	case elf.MachineAArch64:
		return "aarch64"
	case elf.MachineMIPS:
		if c == elf.Class64 {
			return "mips64"
		}
		return "mips"
	case elf.MachinePPC:
		return "ppc"
	case elf.MachinePPC64:
		return "ppc64"
	case elf.MachineS390:
		if c == elf.Class64 {
			return "s390x"
		}
		return "s390"
	case elf.MachineSPARC, elf.MachineSPARCV9:
		if c == elf.Class64 {
			return "sparc64"
		}
		return "sparc"
	case elf.MachineIA64:
		return "ia64"
	case elf.MachineSH:
		return "sh"
	case elf.MachineRISCV:
		if c == elf.Class64 {
			return "riscv64"
		}
		return "riscv32"
	case elf.MachineLoongArch:
		return "loongarch64"
	default:
		return "noarch"
	}
}
