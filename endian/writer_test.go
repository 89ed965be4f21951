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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriterByteOrder(t *testing.T) {
	for _, little := range []bool{false, true} {
		w := &Writer{LittleEndian: little}
		w.WriteShort(0x0102)
		w.WriteLong(0x03040506)
		w.WriteShortMSB(0x0708)
		w.WriteLongLSB(0x090A0B0C)

		r, _ := NewReader(w.Bytes())
		r.LittleEndian = little
		s, _ := r.ReadShort()
		l, _ := r.ReadLong()
		sm, _ := r.ReadShortMSB()
		ll, ok := r.ReadLongLSB()
		if !ok || s != 0x0102 || l != 0x03040506 || sm != 0x0708 || ll != 0x090A0B0C {
			t.Errorf("little=%t: read back %#x %#x %#x %#x", little, s, l, sm, ll)
		}
		if r.Remaining() != 0 {
			t.Errorf("little=%t: %d bytes left over", little, r.Remaining())
		}
	}
}

func TestWriterPad(t *testing.T) {
	w := NewWriter(8)
	w.WriteString("abc")
	w.Pad(4)
	w.Pad(4)
	w.WriteUint8(1)
	want := []byte{'a', 'b', 'c', 0, 1}
	if diff := cmp.Diff(want, w.Bytes()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterPutLong(t *testing.T) {
	w := &Writer{}
	w.WriteBytes(make([]byte, 6))
	if !w.PutLong(2, 0x01020304) {
		t.Fatal("PutLong failed")
	}
	if w.PutLong(3, 0xFFFFFFFF) {
		t.Error("PutLong past the end succeeded")
	}
	want := []byte{0, 0, 1, 2, 3, 4}
	if diff := cmp.Diff(want, w.Bytes()); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
	if w.Len() != 6 {
		t.Errorf("Len() = %d, want 6", w.Len())
	}
}
