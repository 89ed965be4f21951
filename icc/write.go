// seehuhn.de/go/imgmeta - read and write embedded image metadata
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

package icc

import (
	"crypto/md5"
	"slices"
	"time"

	"seehuhn.de/go/imgmeta/endian"
)

// Encode converts the profile to binary form.
//
// Tags are written in order of increasing tag type.  Tags with identical
// data share a single copy.  For version 4 profiles the profile ID is set
// to the MD5 checksum of the encoded profile.
func (p *Profile) Encode() []byte {
	version := p.Version
	if version == 0 {
		version = currentVersion
	}

	tagTypes := make([]TagType, 0, len(p.TagData))
	for t := range p.TagData {
		tagTypes = append(tagTypes, t)
	}
	slices.Sort(tagTypes)

	offsets := make([]uint32, len(tagTypes))
	stored := make(map[string]uint32)
	pos := uint32(headerSize + 4 + 12*len(tagTypes))
	for i, t := range tagTypes {
		key := string(p.TagData[t])
		if start, seen := stored[key]; seen {
			offsets[i] = start
			continue
		}
		stored[key] = pos
		offsets[i] = pos
		pos += uint32(len(key)+3) &^ 3
	}

	w := endian.NewWriter(int(pos))
	w.WriteLong(0) // size, filled in below
	w.WriteLong(p.PreferredCMMType)
	w.WriteLong(uint32(version))
	w.WriteLong(uint32(p.Class))
	w.WriteLong(uint32(p.ColorSpace))
	w.WriteLong(uint32(p.PCS))
	writeDateTime(w, p.CreationDate)
	w.WriteString("acsp")
	w.WriteLong(p.PrimaryPlatform)
	w.WriteLong(0) // flags, filled in after the checksum
	w.WriteLong(p.DeviceManufacturer)
	w.WriteLong(p.DeviceModel)
	w.WriteLong(uint32(p.DeviceAttributes >> 32))
	w.WriteLong(uint32(p.DeviceAttributes))
	w.WriteLong(0) // rendering intent, filled in after the checksum
	w.WriteBytes(d50)
	w.WriteLong(p.Creator)
	w.WriteBytes(make([]byte, headerSize-w.Len())) // profile ID and reserved

	w.WriteLong(uint32(len(tagTypes)))
	for i, t := range tagTypes {
		w.WriteLong(uint32(t))
		w.WriteLong(offsets[i])
		w.WriteLong(uint32(len(p.TagData[t])))
	}
	for i, t := range tagTypes {
		if int(offsets[i]) != w.Len() {
			continue // shared with an earlier tag
		}
		w.WriteBytes(p.TagData[t])
		w.Pad(4)
	}
	w.PutLong(0, uint32(w.Len()))

	buf := w.Bytes()
	if version >= Version4_0_0 {
		h := md5.Sum(buf)
		copy(buf[84:], h[:])
	}
	w.PutLong(44, p.Flags)
	w.PutLong(64, p.RenderingIntent)
	return buf
}

// d50 is the value of the PCS illuminant header field.
var d50 = []byte{
	0x00, 0x00, 0xf6, 0xd6, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0xd3, 0x2d,
}

// writeDateTime writes a dateTimeNumber.  The zero time is written as all
// zeros.
func writeDateTime(w *endian.Writer, t time.Time) {
	if t.IsZero() {
		w.WriteBytes(make([]byte, 12))
		return
	}
	t = t.UTC()
	for _, x := range []int{t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()} {
		w.WriteShort(uint16(x))
	}
}
