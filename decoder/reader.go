package decoder

import (
	"errors"
	"fmt"
	"io"
)

var ErrEndOfStream = errors.New("end of stream")

// Reader is a forward-only cursor over a byte source. Every byte is handed
// out exactly once; there is no peek and no unread.
type Reader struct {
	src io.ByteReader
	idx int
}

func NewReader(src io.ByteReader) *Reader {
	return &Reader{src: src}
}

// Offset is the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.idx
}

func (r *Reader) read() (byte, error) {
	b, err := r.src.ReadByte()
	if err == io.EOF {
		return 0, ErrEndOfStream
	}
	if err != nil {
		return 0, fmt.Errorf("could not read byte %d: %w", r.idx, err)
	}

	r.idx += 1
	return b, nil
}

// little endian
func (r *Reader) readUint16() (uint16, error) {
	low, err := r.read()
	if err != nil {
		return 0, err
	}
	high, err := r.read()
	if err != nil {
		return 0, err
	}

	return (uint16(high) << 8) | uint16(low), nil
}

// readUint16W reads a word when wide is set, otherwise a single byte
// zero-extended to 16 bits.
func (r *Reader) readUint16W(wide bool) (uint16, error) {
	if wide {
		return r.readUint16()
	}

	b, err := r.read()
	return uint16(b), err
}
