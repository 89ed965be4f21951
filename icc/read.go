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
	"bytes"
	"crypto/md5"
	"fmt"
	"time"

	"seehuhn.de/go/imgmeta/endian"
)

const headerSize = 128

// Decode decodes an ICC profile from the given data.
//
// The data is not modified, but the TagData slices of the returned profile
// refer to it.
func Decode(data []byte) (*Profile, error) {
	if len(data) < headerSize+4 {
		return nil, invalidProfile(0, "profile is too short")
	}
	if string(data[36:40]) != "acsp" {
		return nil, invalidProfile(36, "missing 'acsp' signature")
	}

	r, _ := endian.NewReader(data)
	u32 := func() uint32 {
		x, _ := r.ReadLongMSB()
		return x
	}

	p := &Profile{TagData: make(map[TagType][]byte)}
	r.Seek(4)
	p.PreferredCMMType = u32()
	p.Version = Version(u32())
	p.Class = ProfileClass(u32())
	p.ColorSpace = ColorSpace(u32())
	p.PCS = ColorSpace(u32())
	p.CreationDate = readDateTime(r)
	r.Skip(4) // "acsp"
	p.PrimaryPlatform = u32()
	p.Flags = u32()
	p.DeviceManufacturer = u32()
	p.DeviceModel = u32()
	p.DeviceAttributes = uint64(u32())<<32 | uint64(u32())
	p.RenderingIntent = u32()
	r.Skip(12) // PCS illuminant
	p.Creator = u32()

	if id := data[84:100]; !isZero(id) {
		// The profile ID is the MD5 hash of the profile, with the flags,
		// rendering intent and profile ID fields set to zero.
		tmp := bytes.Clone(data)
		clear(tmp[44:48])
		clear(tmp[64:68])
		clear(tmp[84:100])
		sum := md5.Sum(tmp)
		if bytes.Equal(sum[:], id) {
			p.CheckSum = CheckSumValid
		} else {
			p.CheckSum = CheckSumInvalid
		}
	}

	r.Seek(headerSize)
	numTags := u32()
	maxNumTags := uint((len(data) - headerSize - 4) / 12)
	if uint(numTags) > maxNumTags {
		return nil, invalidProfile(headerSize, "too many tags")
	}

	minTagOffset := int64(headerSize) + 4 + int64(numTags)*12
	for i := 0; i < int(numTags); i++ {
		offset := r.Index()
		tagType := TagType(u32())
		tagOffset := u32()
		tagSize := u32()
		if tagSize < 4 {
			return nil, invalidProfile(offset+8, "tag is too small")
		}

		start := int64(tagOffset)
		end := start + int64(tagSize)
		if start < minTagOffset || end > int64(len(data)) {
			return nil, invalidProfile(offset, "tag is out of bounds")
		}
		p.TagData[tagType] = data[start:end]
	}

	if p.Version == 0 {
		p.Version = currentVersion
	}
	return p, nil
}

// PeekColorSpace returns the device colour space of a profile, without
// decoding the rest of the profile.
func PeekColorSpace(data []byte) (ColorSpace, bool) {
	r, err := endian.NewReader(data)
	if err != nil || !r.Seek(16) {
		return 0, false
	}
	x, ok := r.ReadLongMSB()
	return ColorSpace(x), ok
}

func isZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

func readDateTime(r *endian.Reader) time.Time {
	var v [6]int
	for i := range v {
		x, _ := r.ReadShortMSB()
		v[i] = int(x)
	}
	year, month, day, hour, minute, second := v[0], v[1], v[2], v[3], v[4], v[5]
	if year < 1970 || year > 3000 ||
		month < 1 || month > 12 ||
		day < 1 || day > 31 ||
		hour > 23 || minute > 59 || second > 61 {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

// InvalidProfileError indicates that an ICC profile contains invalid binary
// data and cannot be decoded.
type InvalidProfileError struct {
	Offset int
	Reason string
}

func invalidProfile(offset int, reason string) error {
	return &InvalidProfileError{Offset: offset, Reason: reason}
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("icc: invalid profile (byte %d): %s", e.Offset, e.Reason)
}
