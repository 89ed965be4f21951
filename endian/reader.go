// seehuhn.de/go/imgmeta - read and write embedded image metadata
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package endian implements a bounds-checked sequential reader over a byte
// slice, and a matching [Writer].
//
// All read methods return a second boolean result which is false if the
// remaining data is too short for the requested value.  In this case the
// read position is left unchanged, so that callers can distinguish "ran out
// of data" from "read a zero".
//
// Multi-byte values are decoded in the byte order selected by
// [Reader.LittleEndian] (big-endian by default).  The methods with an LSB or
// MSB suffix ignore this setting and always use little-endian or big-endian
// byte order, respectively.
package endian

import (
	"errors"
	"math"
)

// ErrEmpty is returned by [NewReader] if the data is empty.
var ErrEmpty = errors.New("endian: data must not be empty")

// Reader reads fixed-width values from a byte slice.
//
// The underlying data is never modified.  A Reader is not safe for
// concurrent use, but any number of Readers may share the same data.
type Reader struct {
	data []byte
	pos  int

	// LittleEndian selects the byte order used by the methods without an
	// LSB or MSB suffix.
	LittleEndian bool
}

// NewReader returns a new Reader, positioned at the start of data.
func NewReader(data []byte) (*Reader, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return &Reader{data: data}, nil
}

// Index returns the current read position.
func (r *Reader) Index() int {
	return r.pos
}

// Len returns the total length of the underlying data.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of bytes which have not been read yet.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Seek moves the read position to the absolute offset n.
// Seeking to the end of the data is allowed.
func (r *Reader) Seek(n int) bool {
	if n < 0 || n > len(r.data) {
		return false
	}
	r.pos = n
	return true
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) bool {
	if n < 0 || n > r.Remaining() {
		return false
	}
	r.pos += n
	return true
}

// next returns the next n bytes and advances the read position.
func (r *Reader) next(n int) ([]byte, bool) {
	if n < 0 || n > r.Remaining() {
		return nil, false
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

// ReadBytes returns a copy of the next n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, bool) {
	b, ok := r.next(n)
	if !ok {
		return nil, false
	}
	res := make([]byte, n)
	copy(res, b)
	return res, true
}

// ReadUint8 reads a single unsigned byte.
func (r *Reader) ReadUint8() (byte, bool) {
	b, ok := r.next(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

// ReadShort reads an unsigned 16-bit integer.
func (r *Reader) ReadShort() (uint16, bool) {
	if r.LittleEndian {
		return r.ReadShortLSB()
	}
	return r.ReadShortMSB()
}

// ReadShortLSB reads an unsigned 16-bit integer in little-endian byte order.
func (r *Reader) ReadShortLSB() (uint16, bool) {
	b, ok := r.next(2)
	if !ok {
		return 0, false
	}
	return uint16(b[0]) | uint16(b[1])<<8, true
}

// ReadShortMSB reads an unsigned 16-bit integer in big-endian byte order.
func (r *Reader) ReadShortMSB() (uint16, bool) {
	b, ok := r.next(2)
	if !ok {
		return 0, false
	}
	return uint16(b[0])<<8 | uint16(b[1]), true
}

// ReadLong reads an unsigned 32-bit integer.
func (r *Reader) ReadLong() (uint32, bool) {
	if r.LittleEndian {
		return r.ReadLongLSB()
	}
	return r.ReadLongMSB()
}

// ReadLongLSB reads an unsigned 32-bit integer in little-endian byte order.
func (r *Reader) ReadLongLSB() (uint32, bool) {
	b, ok := r.next(4)
	if !ok {
		return 0, false
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, true
}

// ReadLongMSB reads an unsigned 32-bit integer in big-endian byte order.
func (r *Reader) ReadLongMSB() (uint32, bool) {
	b, ok := r.next(4)
	if !ok {
		return 0, false
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), true
}

// ReadInt32 reads a signed 32-bit integer in two's complement form.
func (r *Reader) ReadInt32() (int32, bool) {
	x, ok := r.ReadLong()
	return int32(x), ok
}

func (r *Reader) readUint64() (uint64, bool) {
	b, ok := r.next(8)
	if !ok {
		return 0, false
	}
	var x uint64
	if r.LittleEndian {
		for i := 7; i >= 0; i-- {
			x = x<<8 | uint64(b[i])
		}
	} else {
		for i := 0; i < 8; i++ {
			x = x<<8 | uint64(b[i])
		}
	}
	return x, true
}

// ReadFloat reads an IEEE 754 single precision number.
func (r *Reader) ReadFloat() (float32, bool) {
	x, ok := r.ReadLong()
	if !ok {
		return 0, false
	}
	return math.Float32frombits(x), true
}

// ReadDouble reads an IEEE 754 double precision number.
func (r *Reader) ReadDouble() (float64, bool) {
	x, ok := r.readUint64()
	if !ok {
		return 0, false
	}
	return math.Float64frombits(x), true
}

// ReadString reads a string of exactly n bytes.
// The bytes are used as-is; no character set conversion is performed.
func (r *Reader) ReadString(n int) (string, bool) {
	b, ok := r.next(n)
	if !ok {
		return "", false
	}
	return string(b), true
}
