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

package eightbim

import (
	"seehuhn.de/go/imgmeta/clippath"
)

// Profile is a Photoshop image resource section.
type Profile struct {
	Records []Record
}

// NewProfile decodes an image resource section.  See [Decode] for details.
func NewProfile(data []byte) *Profile {
	return &Profile{Records: Decode(data)}
}

// Encode converts the profile to binary form.
func (p *Profile) Encode() []byte {
	return Encode(p.Records)
}

// Get returns the data of the first resource with the given ID.
// The result is nil if there is no such resource.
func (p *Profile) Get(id uint16) []byte {
	for _, rec := range p.Records {
		if rec.ID == id {
			return rec.Data
		}
	}
	return nil
}

// Set stores data as the value of the resource with the given ID.
//
// If the resource exists, the first matching record is replaced and all
// further records with the same ID are removed.  Otherwise a new record is
// appended.  If data is empty, all records with this ID are removed.
func (p *Profile) Set(id uint16, data []byte) {
	if len(data) == 0 {
		p.Remove(id)
		return
	}

	found := false
	res := p.Records[:0]
	for _, rec := range p.Records {
		if rec.ID != id {
			res = append(res, rec)
			continue
		}
		if found {
			continue
		}
		rec.Data = data
		res = append(res, rec)
		found = true
	}
	if !found {
		res = append(res, Record{ID: id, Data: data})
	}
	p.Records = res
}

// Remove deletes all resources with the given ID.
// The return value indicates whether any records were removed.
func (p *Profile) Remove(id uint16) bool {
	res := p.Records[:0]
	for _, rec := range p.Records {
		if rec.ID != id {
			res = append(res, rec)
		}
	}
	removed := len(res) < len(p.Records)
	p.Records = res
	return removed
}

// ClipPath is a named clipping path.
type ClipPath struct {
	Name string

	// Path is the SVG path data of the clipping path.
	Path string
}

// ClipPaths returns the clipping paths stored in the profile, scaled to an
// image of the given width and height.  Path resources which contain no
// complete subpath are omitted.
func (p *Profile) ClipPaths(width, height int) []ClipPath {
	var res []ClipPath
	for _, rec := range p.Records {
		if !IsClipPath(rec.ID) {
			continue
		}
		path := clippath.Reconstruct(width, height, rec.Data)
		if path == "" {
			continue
		}
		res = append(res, ClipPath{Name: rec.Name, Path: path})
	}
	return res
}
