// Package fileutil provides input helpers for reading corpus text.
package fileutil

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// maxLineSize bounds a single input line (16 MB). Corpus dumps carry
// long lines but anything beyond this is not a logical text unit.
const maxLineSize = 16 << 20

// reader couples a decompressing stream with the underlying file so
// Close releases both.
type reader struct {
	io.Reader
	file *os.File
}

func (r *reader) Close() error {
	return r.file.Close()
}

// OpenText opens a UTF-8 text file for line-oriented reading. Files
// with an .xz extension are transparently decompressed.
func OpenText(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &reader{Reader: xr, file: f}, nil
	}

	return f, nil
}

// NewLineScanner returns a scanner over r sized for corpus lines.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return sc
}
