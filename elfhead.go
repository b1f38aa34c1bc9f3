package elfhead

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/elfhead/elf"
	"github.com/pkg/errors"
)

// ObjectExt is the extension expected on files given to Load.
const ObjectExt = ".o"

var (
	ErrUsage = stderrors.New("usage")
	ErrIO    = stderrors.New("i/o")
	ErrEmpty = stderrors.New("empty file")
)

// IOError reports a failure to open or read an input file.
type IOError struct {
	File string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// CheckArgs accepts exactly one argument naming a relocatable object.
func CheckArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected exactly one object file, got %d arguments", ErrUsage, len(args))
	}
	if err := CheckObjectName(args[0]); err != nil {
		return "", err
	}
	return args[0], nil
}

func CheckObjectName(file string) error {
	if !strings.HasSuffix(file, ObjectExt) || len(file) == len(ObjectExt) {
		return fmt.Errorf("%w: %s: file name must end with %s", ErrUsage, file, ObjectExt)
	}
	return nil
}

// ReadObject reads the whole content of file. An empty file is an error.
func ReadObject(file string) ([]byte, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, &IOError{File: file, Err: errors.Wrap(err, "open")}
	}
	defer r.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{File: file, Err: errors.Wrap(err, "read")}
	}
	if len(buf) == 0 {
		return nil, &IOError{File: file, Err: ErrEmpty}
	}
	return buf, nil
}

// Load reads file and decodes its ELF header.
func Load(file string) (*elf.Header, error) {
	if err := CheckObjectName(file); err != nil {
		return nil, err
	}
	buf, err := ReadObject(file)
	if err != nil {
		return nil, err
	}
	h, err := elf.Decode(buf)
	if err != nil {
		return nil, errors.WithMessage(err, file)
	}
	return h, nil
}
