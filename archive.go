package elfhead

import (
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/midbel/elfhead/elf"
	"github.com/midbel/tape/ar"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Member is a file stored in a static library. Object is set when the member
// starts with the ELF magic. Err is set when its header could not be decoded.
type Member struct {
	Name    string
	Size    int64
	ModTime time.Time
	Object  bool
	Header  *elf.Header
	Err     error

	buf []byte
}

// OpenArchive decodes the header of every object stored in the ar archive
// file.
func OpenArchive(file string) ([]Member, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, &IOError{File: file, Err: errors.Wrap(err, "open")}
	}
	defer r.Close()

	ms, err := ReadArchive(r)
	if err != nil {
		return nil, errors.WithMessage(err, file)
	}
	return ms, nil
}

// ReadArchive walks the members of an ar archive. The symbol table and the
// long names table are skipped. Headers are decoded once every member has
// been read.
func ReadArchive(r io.Reader) ([]Member, error) {
	rs, err := ar.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "archive")
	}
	var ms []Member
	for {
		h, err := rs.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "archive")
		}
		if isIndexMember(h.Filename) {
			if _, err := io.Copy(io.Discard, rs); err != nil {
				return nil, errors.Wrapf(err, "archive: %s", h.Filename)
			}
			continue
		}
		m := Member{
			Name:    memberName(h.Filename),
			Size:    h.Size,
			ModTime: h.ModTime,
		}
		if m.buf, err = readPrefix(rs, elf.MaxHeaderSize); err != nil {
			return nil, errors.Wrapf(err, "archive: %s", m.Name)
		}
		ms = append(ms, m)
	}
	decodeMembers(ms)
	return ms, nil
}

func decodeMembers(ms []Member) {
	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i := range ms {
		m := &ms[i]
		group.Go(func() error {
			m.Object = elf.IsObject(m.buf)
			m.Header, m.Err = elf.Decode(m.buf)
			m.buf = nil
			return nil
		})
	}
	group.Wait()
}

// readPrefix consumes the whole member and keeps its first n bytes.
func readPrefix(r io.Reader, n int) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(buf) > n {
		buf = append([]byte(nil), buf[:n]...)
	}
	return buf, nil
}

func isIndexMember(name string) bool {
	switch name = strings.TrimSpace(name); name {
	case "", "/", "//", "/SYM64/", "ARFILENAMES/":
		return true
	default:
		return strings.HasPrefix(name, "__.SYMDEF")
	}
}

func memberName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "/") {
		return name
	}
	return strings.TrimSuffix(name, "/")
}

// Result is the outcome of decoding one file with LoadAll.
type Result struct {
	File   string
	Header *elf.Header
	Err    error
}

// LoadAll loads files concurrently. Results are in the same order as files.
func LoadAll(files []string) []Result {
	rs := make([]Result, len(files))

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i, f := range files {
		i, f := i, f
		group.Go(func() error {
			h, err := Load(f)
			rs[i] = Result{File: f, Header: h, Err: err}
			return nil
		})
	}
	group.Wait()
	return rs
}
