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

package endian

// Writer appends fixed-width values to a growing byte slice.
//
// The zero value is an empty big-endian Writer, ready to use.
type Writer struct {
	buf []byte

	// LittleEndian selects the byte order used by the methods without an
	// LSB or MSB suffix.
	LittleEndian bool
}

// NewWriter returns a new Writer with room for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the data written so far.
// The slice is only valid until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteBytes appends b.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteString appends the bytes of s, without a length prefix.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(x byte) {
	w.buf = append(w.buf, x)
}

// Pad appends zero bytes until the length is a multiple of n.
func (w *Writer) Pad(n int) {
	for len(w.buf)%n != 0 {
		w.buf = append(w.buf, 0)
	}
}

// WriteShort appends an unsigned 16-bit integer.
func (w *Writer) WriteShort(x uint16) {
	if w.LittleEndian {
		w.WriteShortLSB(x)
	} else {
		w.WriteShortMSB(x)
	}
}

// WriteShortLSB appends an unsigned 16-bit integer in little-endian byte
// order.
func (w *Writer) WriteShortLSB(x uint16) {
	w.buf = append(w.buf, byte(x), byte(x>>8))
}

// WriteShortMSB appends an unsigned 16-bit integer in big-endian byte order.
func (w *Writer) WriteShortMSB(x uint16) {
	w.buf = append(w.buf, byte(x>>8), byte(x))
}

// WriteLong appends an unsigned 32-bit integer.
func (w *Writer) WriteLong(x uint32) {
	if w.LittleEndian {
		w.WriteLongLSB(x)
	} else {
		w.WriteLongMSB(x)
	}
}

// WriteLongLSB appends an unsigned 32-bit integer in little-endian byte
// order.
func (w *Writer) WriteLongLSB(x uint32) {
	w.buf = append(w.buf, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

// WriteLongMSB appends an unsigned 32-bit integer in big-endian byte order.
func (w *Writer) WriteLongMSB(x uint32) {
	w.buf = append(w.buf, byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
}

// PutLong overwrites the four bytes at offset with x, in the byte order
// selected by LittleEndian.  It returns false, and leaves the data
// unchanged, if offset does not refer to data which has already been
// written.
func (w *Writer) PutLong(offset int, x uint32) bool {
	if offset < 0 || offset+4 > len(w.buf) {
		return false
	}
	tmp := Writer{buf: w.buf[offset:offset], LittleEndian: w.LittleEndian}
	tmp.WriteLong(x)
	return true
}
