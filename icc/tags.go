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
	"errors"
	"unicode/utf16"

	"seehuhn.de/go/imgmeta/endian"
)

// The TagType identifies a tag in an ICC profile.
type TagType uint32

func (t TagType) String() string {
	return signature(uint32(t))
}

// Tags which hold human readable text.
const (
	ProfileDescription TagType = 0x64657363 // "desc"
	Copyright          TagType = 0x63707274 // "cprt"
	DeviceMfgDesc      TagType = 0x646D6E64 // "dmnd"
	DeviceModelDesc    TagType = 0x646D6464 // "dmdd"
)

// MultiLocalizedUnicode represents a localized Unicode string.
type MultiLocalizedUnicode []LocalizedUnicode

// LocalizedUnicode represents a language-country pair.
type LocalizedUnicode struct {
	Language string
	Country  string
	Value    string
}

// String returns the US English value, or the first value if there is no
// US English entry.
func (m MultiLocalizedUnicode) String() string {
	if len(m) == 0 {
		return ""
	}
	for _, lu := range m {
		if lu.Language == "en" && lu.Country == "US" {
			return lu.Value
		}
	}
	return m[0].Value
}

// Text decodes a text tag.
//
// The tag data can be of type textType, textDescriptionType or
// multiLocalizedUnicodeType.  Values from the older types are reported as
// US English.
func (p *Profile) Text(tag TagType) (MultiLocalizedUnicode, error) {
	data, ok := p.TagData[tag]
	if !ok {
		return nil, errMissingTag
	}

	var s string
	var err error
	switch {
	case checkType("mluc", data):
		return decodeMLUC(data)
	case checkType("text", data):
		s, err = decodeText(data)
	case checkType("desc", data):
		s, err = decodeTextDescription(data)
	default:
		return nil, errUnexpectedType
	}
	if err != nil {
		return nil, err
	}
	return MultiLocalizedUnicode{{Language: "en", Country: "US", Value: s}}, nil
}

// Description returns the profile description.
func (p *Profile) Description() (string, error) {
	return p.textString(ProfileDescription)
}

// Copyright returns the copyright notice of the profile.
func (p *Profile) Copyright() (string, error) {
	return p.textString(Copyright)
}

// Manufacturer returns the device manufacturer description.
func (p *Profile) Manufacturer() (string, error) {
	return p.textString(DeviceMfgDesc)
}

// Model returns the device model description.
func (p *Profile) Model() (string, error) {
	return p.textString(DeviceModelDesc)
}

func (p *Profile) textString(tag TagType) (string, error) {
	m, err := p.Text(tag)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func decodeText(data []byte) (string, error) {
	if len(data) < 8 {
		return "", errInvalidTagData
	}
	return trimNul(data[8:]), nil
}

// decodeTextDescription decodes the ASCII part of a textDescriptionType
// element.  The Unicode and ScriptCode parts are ignored.
func decodeTextDescription(data []byte) (string, error) {
	r, _ := endian.NewReader(data)
	if !r.Seek(8) {
		return "", errInvalidTagData
	}
	n, ok := r.ReadLongMSB()
	if !ok {
		return "", errInvalidTagData
	}
	s, ok := r.ReadBytes(int(n))
	if !ok {
		return "", errInvalidTagData
	}
	return trimNul(s), nil
}

func decodeMLUC(data []byte) (MultiLocalizedUnicode, error) {
	r, _ := endian.NewReader(data)
	if !r.Seek(8) {
		return nil, errInvalidTagData
	}
	n, ok1 := r.ReadLongMSB()
	recordSize, ok2 := r.ReadLongMSB()
	if !ok1 || !ok2 || recordSize < 12 {
		return nil, errInvalidTagData
	}
	if n == 0 || uint64(len(data)) < 16+uint64(recordSize)*uint64(n) {
		return nil, errInvalidTagData
	}

	res := make(MultiLocalizedUnicode, n)
	for i := range res {
		r.Seek(16 + i*int(recordSize))
		language, _ := r.ReadString(2)
		country, _ := r.ReadString(2)
		length, _ := r.ReadLongMSB()
		offset, _ := r.ReadLongMSB()

		start := uint64(offset)
		end := start + uint64(length)
		if end > uint64(len(data)) || length&1 != 0 {
			return nil, errInvalidTagData
		}

		d16 := make([]uint16, length/2)
		for j := range d16 {
			d16[j] = uint16(data[start+2*uint64(j)])<<8 | uint16(data[start+2*uint64(j)+1])
		}
		res[i] = LocalizedUnicode{
			Language: language,
			Country:  country,
			Value:    string(utf16.Decode(d16)),
		}
	}
	return res, nil
}

func trimNul(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

func checkType(typeID string, data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == typeID
}

var (
	errMissingTag     = errors.New("icc: missing tag")
	errUnexpectedType = errors.New("icc: unexpected tag data type")
	errInvalidTagData = errors.New("icc: invalid tag data")
)
