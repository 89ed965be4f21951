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

// Package iptc reads and writes IPTC-IIM metadata.
//
// IPTC data is a sequence of datasets.  Each dataset starts with the tag
// marker 0x1C, followed by a record number, a dataset number and a 16-bit
// big-endian length:
//
//	0x1C | record:u8 | dataset:u8 | length:u16 | value
//
// This package handles datasets of the application record (record 2).  The
// envelope record is only used to declare the UTF-8 character set when
// writing.  All values are stored as UTF-8 text.
//
// IPTC data is often embedded in a Photoshop image resource block, see
// seehuhn.de/go/imgmeta/eightbim.
package iptc

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/imgmeta/endian"
)

const (
	tagMarker         = 0x1C
	applicationRecord = 2

	// maxValueLength is the largest value which fits into the 16-bit
	// length field.
	maxValueLength = 0xFFFF
)

// envelopeUTF8 is the envelope record dataset 1:90 declaring the
// ISO 2022 escape sequence for UTF-8.
var envelopeUTF8 = []byte{0x1C, 0x01, 0x5A, 0x00, 0x03, 0x1B, 0x25, 0x47}

// Entry is a single dataset.
type Entry struct {
	Tag  Tag
	Data []byte
}

// Value returns the dataset value as a string.
func (e Entry) Value() string {
	return string(e.Data)
}

// Profile is a list of IPTC datasets.
type Profile struct {
	Entries []Entry
}

// Decode reads IPTC datasets from data.
//
// Decode never fails.  If data does not start with a tag marker, the
// result is empty.  Datasets outside the application record and datasets
// with unknown tags are skipped.  Decoding stops at the first truncated
// dataset.
func Decode(data []byte) *Profile {
	p := &Profile{}
	if len(data) == 0 || data[0] != tagMarker {
		return p
	}
	r, _ := endian.NewReader(data)

	for r.Remaining() >= 5 {
		if b, _ := r.ReadUint8(); b != tagMarker {
			continue
		}
		record, _ := r.ReadUint8()
		dataset, _ := r.ReadUint8()
		tag := Unknown
		if record == applicationRecord {
			tag = tagFromByte(dataset)
		}
		n, _ := r.ReadShortMSB()

		if tag == Unknown {
			if !r.Skip(int(n)) {
				break
			}
			continue
		}
		value, ok := r.ReadBytes(int(n))
		if !ok {
			break
		}
		p.Entries = append(p.Entries, Entry{Tag: tag, Data: value})
	}
	return p
}

// Encode converts the profile to binary form.
//
// The output starts with an envelope record which declares UTF-8 encoding,
// followed by the datasets in order.
func (p *Profile) Encode() ([]byte, error) {
	size := len(envelopeUTF8)
	for _, e := range p.Entries {
		if !e.Tag.isValid() {
			return nil, &ArgumentError{Arg: "tag", Reason: fmt.Sprintf("cannot encode %s", e.Tag)}
		}
		if len(e.Data) > maxValueLength {
			return nil, &ArgumentError{Arg: "value", Reason: fmt.Sprintf("%s value is too long (%d bytes)", e.Tag, len(e.Data))}
		}
		size += 5 + len(e.Data)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, envelopeUTF8...)
	for _, e := range p.Entries {
		n := len(e.Data)
		buf = append(buf, tagMarker, applicationRecord, byte(e.Tag), byte(n>>8), byte(n))
		buf = append(buf, e.Data...)
	}
	return buf, nil
}

// GetValue returns the value of the first dataset with the given tag.
func (p *Profile) GetValue(tag Tag) (string, bool) {
	for _, e := range p.Entries {
		if e.Tag == tag {
			return e.Value(), true
		}
	}
	return "", false
}

// GetAllValues returns the values of all datasets with the given tag, in
// order.
func (p *Profile) GetAllValues(tag Tag) []string {
	var res []string
	for _, e := range p.Entries {
		if e.Tag == tag {
			res = append(res, e.Value())
		}
	}
	return res
}

// Tags returns the distinct tags present in the profile, in increasing
// order.
func (p *Profile) Tags() []Tag {
	seen := make(map[Tag]struct{}, len(p.Entries))
	for _, e := range p.Entries {
		seen[e.Tag] = struct{}{}
	}
	res := maps.Keys(seen)
	slices.Sort(res)
	return res
}

// SetValue sets the value of a dataset.
//
// If the tag is not repeatable and a dataset with this tag exists, the
// value of the first such dataset is replaced.  Otherwise a new dataset is
// appended.
func (p *Profile) SetValue(tag Tag, value string) error {
	if !tag.isValid() {
		return &ArgumentError{Arg: "tag", Reason: fmt.Sprintf("%s is not a valid IPTC tag", tag)}
	}
	if len(value) > maxValueLength {
		return &ArgumentError{Arg: "value", Reason: fmt.Sprintf("value is too long (%d bytes)", len(value))}
	}

	if !tag.IsRepeatable() {
		for i := range p.Entries {
			if p.Entries[i].Tag == tag {
				p.Entries[i].Data = []byte(value)
				return nil
			}
		}
	}
	p.Entries = append(p.Entries, Entry{Tag: tag, Data: []byte(value)})
	return nil
}

// SetDateTimeValue sets the value of a date or time dataset.
//
// Dates are stored as CCYYMMDD, times as HHMMSS±HHMM using the time zone
// offset of t.  An error is returned if tag is neither a date nor a time tag.
func (p *Profile) SetDateTimeValue(tag Tag, t time.Time) error {
	var value string
	switch {
	case tag.IsDate():
		value = t.Format("20060102")
	case tag.IsTime():
		value = t.Format("150405-0700")
	default:
		return &ArgumentError{Arg: "tag", Reason: fmt.Sprintf("%s is not a date or time tag", tag)}
	}
	return p.SetValue(tag, value)
}

// RemoveValue removes all datasets with the given tag.
// The return value indicates whether any datasets were removed.
func (p *Profile) RemoveValue(tag Tag) bool {
	return p.removeFunc(func(e Entry) bool {
		return e.Tag == tag
	})
}

// RemoveMatchingValue removes all datasets with the given tag whose value
// equals value.  The return value indicates whether any datasets were
// removed.
func (p *Profile) RemoveMatchingValue(tag Tag, value string) bool {
	return p.removeFunc(func(e Entry) bool {
		return e.Tag == tag && e.Value() == value
	})
}

func (p *Profile) removeFunc(del func(Entry) bool) bool {
	n := len(p.Entries)
	p.Entries = slices.DeleteFunc(p.Entries, del)
	return len(p.Entries) < n
}

// ArgumentError is returned when a method is called with an invalid
// argument.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("iptc: invalid argument %q: %s", e.Arg, e.Reason)
}
