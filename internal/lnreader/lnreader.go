package lnreader

import (
	"bufio"
	"bytes"
	"io"
)

// LineNumberReader reads a text stream line by line without a length
// limit, tolerating both LF and CRLF line endings. NumLine holds the
// one-based number of the last line returned.
type LineNumberReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	NumLine   int
}

func NewLineNumberReader(r io.Reader) *LineNumberReader {
	return &LineNumberReader{
		r: bufio.NewReader(r),
	}
}

func (r *LineNumberReader) ReadLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		err = nil
	} else if err == nil {
		n := len(line)
		if n >= 2 && line[n-2] == '\r' && line[n-1] == '\n' {
			line = line[:n-2]
		} else {
			line = line[:n-1]
		}
	}
	if err == nil {
		r.NumLine++
		if r.NumLine == 1 {
			line = TrimBOM(line)
		}
	}
	return line, err
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

func TrimBOM(l []byte) []byte {
	return bytes.TrimPrefix(l, utf8BOM)
}

func IsEmptyLine(l []byte) bool {
	for _, c := range l {
		if c != ' ' && c != '\n' && c != '\t' {
			return false
		}
	}
	return true
}
