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

// Package eightbim reads and writes Photoshop image resource blocks.
//
// Image resources are stored as a sequence of "8BIM" blocks.  Each block has
// a 16-bit resource ID, a Pascal-style name and a length-prefixed payload:
//
//	"8BIM" | id:u16 | nameLen:u8 | name | [pad] | valueLen:u32 | value | [pad]
//
// All integers are big-endian.  The name (including its length byte) and the
// value are padded with a zero byte to an even length.
//
// Use [Decode] to split a resource section into [Record]s and [Encode] to
// convert records back to binary form.  [Profile] adds convenience methods
// for the well-known resources, for example [Profile.ClipPaths].
package eightbim

import (
	"bytes"

	"seehuhn.de/go/imgmeta/endian"
)

// Record is a single image resource block.
type Record struct {
	ID uint16

	// Name is the name of the resource.  Names are only stored for
	// clipping path resources (see [IsClipPath]); for other resources
	// the name is always empty.
	Name string

	Data []byte
}

// Well-known resource IDs.
const (
	IPTC uint16 = 0x0404 // IPTC-NAA record
	ICC  uint16 = 0x040F // ICC profile
	Exif uint16 = 0x0422 // Exif data 1
	XMP  uint16 = 0x0424 // XMP metadata

	ClipPathFirst uint16 = 2000 // first path information resource
	ClipPathLast  uint16 = 2997 // last path information resource
	ClipPathName  uint16 = 2999 // name of the clipping path
)

// IsClipPath reports whether id is in the range of path information
// resources.
func IsClipPath(id uint16) bool {
	return id >= ClipPathFirst && id <= ClipPathLast
}

var signature = []byte("8BIM")

// Decode splits data into resource blocks.
//
// Decode never fails.  Data between blocks which does not start with the
// "8BIM" signature is skipped byte by byte.  If a block is truncated, or its
// length field is out of range, decoding stops and the blocks read so far
// are returned.  Blocks with an empty value are omitted.
func Decode(data []byte) []Record {
	r, err := endian.NewReader(data)
	if err != nil {
		return nil
	}

	var res []Record
	for r.Remaining() >= len(signature) {
		if !bytes.HasPrefix(data[r.Index():], signature) {
			r.Skip(1)
			continue
		}
		r.Skip(len(signature))

		// id, name length and value length
		if r.Remaining() < 7 {
			break
		}
		id, _ := r.ReadShortMSB()
		nameLen, _ := r.ReadUint8()

		var name string
		if nameLen > 0 && IsClipPath(id) && int(nameLen) <= r.Remaining() {
			name, _ = r.ReadString(int(nameLen))
		} else if !r.Skip(int(nameLen)) {
			break
		}
		if nameLen%2 == 0 && !r.Skip(1) {
			break
		}

		valueLen, ok := r.ReadLongMSB()
		if !ok || int32(valueLen) < 0 || int64(valueLen) > int64(r.Remaining()) {
			break
		}
		if valueLen > 0 {
			value, _ := r.ReadBytes(int(valueLen))
			res = append(res, Record{ID: id, Name: name, Data: value})
		}
		if valueLen%2 == 1 {
			r.Skip(1)
		}
	}
	return res
}

// Encode converts the records to binary form.
//
// Names are only written for clipping path resources, and only if they are
// shorter than 255 bytes.  If records is empty, the result is empty.
func Encode(records []Record) []byte {
	size := 0
	for _, rec := range records {
		size += 4 + 2 + 2 + 4 + len(rec.Data) + 1 + len(rec.Name) + 1
	}
	if size == 0 {
		return nil
	}

	w := endian.NewWriter(size)
	for _, rec := range records {
		w.WriteBytes(signature)
		w.WriteShortMSB(rec.ID)

		name := rec.Name
		if !IsClipPath(rec.ID) || len(name) >= 255 {
			name = ""
		}
		w.WriteUint8(byte(len(name)))
		w.WriteString(name)
		w.Pad(2)

		w.WriteLongMSB(uint32(len(rec.Data)))
		w.WriteBytes(rec.Data)
		w.Pad(2)
	}
	return w.Bytes()
}
