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

import (
	"math"
	"testing"
)

func TestNewReaderEmpty(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		r, err := NewReader(data)
		if err != ErrEmpty {
			t.Errorf("NewReader(%v): err = %v, want ErrEmpty", data, err)
		}
		if r != nil {
			t.Errorf("NewReader(%v) returned a reader", data)
		}
	}
}

func TestReadUint8(t *testing.T) {
	r, err := NewReader([]byte{42})
	if err != nil {
		t.Fatal(err)
	}
	b, ok := r.ReadUint8()
	if !ok || b != 42 {
		t.Fatalf("ReadUint8() = %d, %t, want 42, true", b, ok)
	}
	if r.Index() != 1 {
		t.Errorf("index = %d, want 1", r.Index())
	}
	if _, ok := r.ReadUint8(); ok {
		t.Error("read past end of data")
	}
	if r.Index() != 1 {
		t.Errorf("index after failed read = %d, want 1", r.Index())
	}
}

func TestShortReadKeepsIndex(t *testing.T) {
	r, _ := NewReader([]byte{1, 2, 3})

	if _, ok := r.ReadLong(); ok {
		t.Error("ReadLong succeeded on 3 bytes")
	}
	if _, ok := r.ReadFloat(); ok {
		t.Error("ReadFloat succeeded on 3 bytes")
	}
	if _, ok := r.ReadDouble(); ok {
		t.Error("ReadDouble succeeded on 3 bytes")
	}
	if _, ok := r.ReadString(4); ok {
		t.Error("ReadString(4) succeeded on 3 bytes")
	}
	if r.Index() != 0 {
		t.Fatalf("index = %d, want 0", r.Index())
	}

	x, ok := r.ReadShort()
	if !ok || x != 0x0102 {
		t.Errorf("ReadShort() = %#x, %t, want 0x0102, true", x, ok)
	}
	if _, ok := r.ReadShort(); ok {
		t.Error("ReadShort succeeded on 1 byte")
	}
	if r.Index() != 2 {
		t.Errorf("index = %d, want 2", r.Index())
	}
}

func TestByteOrder(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}

	tests := []struct {
		name   string
		little bool
		read   func(r *Reader) (uint32, bool)
		want   uint32
	}{
		{"ShortBE", false, func(r *Reader) (uint32, bool) { x, ok := r.ReadShort(); return uint32(x), ok }, 0x0102},
		{"ShortLE", true, func(r *Reader) (uint32, bool) { x, ok := r.ReadShort(); return uint32(x), ok }, 0x0201},
		{"ShortMSB", true, func(r *Reader) (uint32, bool) { x, ok := r.ReadShortMSB(); return uint32(x), ok }, 0x0102},
		{"ShortLSB", false, func(r *Reader) (uint32, bool) { x, ok := r.ReadShortLSB(); return uint32(x), ok }, 0x0201},
		{"LongBE", false, (*Reader).ReadLong, 0x01020304},
		{"LongLE", true, (*Reader).ReadLong, 0x04030201},
		{"LongMSB", true, (*Reader).ReadLongMSB, 0x01020304},
		{"LongLSB", false, (*Reader).ReadLongLSB, 0x04030201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := NewReader(data)
			r.LittleEndian = tt.little
			got, ok := tt.read(r)
			if !ok {
				t.Fatal("read failed")
			}
			if got != tt.want {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestReadInt32(t *testing.T) {
	r, _ := NewReader([]byte{0xFF, 0xFF, 0xF0, 0x00, 0x00, 0x00, 0x10, 0x00})
	a, _ := r.ReadInt32()
	b, _ := r.ReadInt32()
	if a != -4096 || b != 4096 {
		t.Errorf("got %d, %d, want -4096, 4096", a, b)
	}
}

func TestReadFloatingPoint(t *testing.T) {
	f := math.Float32bits(1.5)
	d := math.Float64bits(-2.25)
	data := []byte{
		byte(f >> 24), byte(f >> 16), byte(f >> 8), byte(f),
		byte(d), byte(d >> 8), byte(d >> 16), byte(d >> 24),
		byte(d >> 32), byte(d >> 40), byte(d >> 48), byte(d >> 56),
	}
	r, _ := NewReader(data)
	x, ok := r.ReadFloat()
	if !ok || x != 1.5 {
		t.Errorf("ReadFloat() = %v, %t, want 1.5, true", x, ok)
	}
	r.LittleEndian = true
	y, ok := r.ReadDouble()
	if !ok || y != -2.25 {
		t.Errorf("ReadDouble() = %v, %t, want -2.25, true", y, ok)
	}
	if r.Remaining() != 0 {
		t.Errorf("%d bytes remaining", r.Remaining())
	}
}

func TestSeekAndSkip(t *testing.T) {
	r, _ := NewReader([]byte("8BIM\x04\x04"))
	if !r.Seek(4) {
		t.Fatal("Seek(4) failed")
	}
	if id, _ := r.ReadShort(); id != 0x0404 {
		t.Errorf("id = %#x, want 0x0404", id)
	}
	if !r.Seek(r.Len()) {
		t.Error("seeking to the end failed")
	}
	if r.Seek(r.Len() + 1) {
		t.Error("seeking past the end succeeded")
	}
	if r.Seek(-1) {
		t.Error("seeking to a negative offset succeeded")
	}

	r.Seek(0)
	if !r.Skip(2) || r.Index() != 2 {
		t.Errorf("Skip(2): index = %d, want 2", r.Index())
	}
	if r.Skip(5) {
		t.Error("skipping past the end succeeded")
	}
	s, ok := r.ReadString(2)
	if !ok || s != "IM" {
		t.Errorf("ReadString(2) = %q, %t", s, ok)
	}
}

func TestReadBytesCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	r, _ := NewReader(data)
	b, ok := r.ReadBytes(2)
	if !ok {
		t.Fatal("ReadBytes failed")
	}
	b[0] = 99
	if data[0] != 1 {
		t.Error("ReadBytes returned a slice aliasing the input")
	}
	if _, ok := r.ReadBytes(2); ok {
		t.Error("ReadBytes(2) succeeded with 1 byte left")
	}
}
