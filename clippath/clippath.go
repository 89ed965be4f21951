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

// Package clippath converts Photoshop path resources into SVG path data.
//
// A path resource is a sequence of 26-byte records.  Each record starts with
// a 16-bit selector, followed by 24 bytes of selector-specific data.  Length
// records give the number of knots in the following subpath, knot records
// give one Bézier knot as three points (leading control point, anchor,
// trailing control point).  Coordinates are signed 8.24 fixed-point numbers
// relative to the image size, stored with the vertical component first.
//
// Fill rule records and the clipboard record are ignored.
package clippath

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/imgmeta/endian"
)

// Record selectors of the path resource format.
const (
	closedSubpathLength = 0
	closedKnotLinked    = 1
	closedKnotUnlinked  = 2
	openSubpathLength   = 3
	openKnotLinked      = 4
	openKnotUnlinked    = 5
	pathFillRule        = 6
	clipboard           = 7
	initialFill         = 8

	recordSize      = 26
	fixedPointScale = 4096
)

// Point is a point in image coordinates.
type Point struct {
	X, Y float64
}

// Knot is a point on a path together with its two Bézier control points.
type Knot struct {
	Leading  Point
	Anchor   Point
	Trailing Point
}

// Reconstruct returns the SVG path data for the path resource in data.
//
// The coordinates in data are scaled to an image of the given width and
// height.  Every subpath is closed.  The result is empty if data contains no
// complete subpath.
func Reconstruct(width, height int, data []byte) string {
	r, err := endian.NewReader(data)
	if err != nil {
		return ""
	}

	b := &builder{width: float64(width), height: float64(height)}
	for r.Remaining() >= recordSize {
		start := r.Index()
		selector, _ := r.ReadShortMSB()
		switch selector {
		case closedSubpathLength, openSubpathLength:
			if b.count == 0 {
				b.count, _ = r.ReadShortMSB()
			}
		case closedKnotLinked, closedKnotUnlinked, openKnotLinked, openKnotUnlinked:
			if b.count > 0 {
				b.addKnot(b.readKnot(r))
			}
		case pathFillRule, clipboard, initialFill:
			// not represented in SVG path data
		}
		r.Seek(start + recordSize)
	}
	return b.path.String()
}

// builder holds the state of the path reconstruction.
type builder struct {
	width, height float64

	path strings.Builder

	// count is the number of knots still missing from the current subpath.
	count     uint16
	inSubpath bool
	first     Knot
	last      Knot
}

func (b *builder) readKnot(r *endian.Reader) Knot {
	var pts [3]Point
	for i := range pts {
		y, _ := r.ReadInt32()
		x, _ := r.ReadInt32()
		pts[i] = Point{
			X: float64(x) * b.width / fixedPointScale / fixedPointScale,
			Y: float64(y) * b.height / fixedPointScale / fixedPointScale,
		}
	}
	return Knot{Leading: pts[0], Anchor: pts[1], Trailing: pts[2]}
}

// addKnot appends a knot to the current subpath, starting a new subpath if
// necessary.  After the last knot of a subpath, the subpath is closed.
func (b *builder) addKnot(k Knot) {
	if !b.inSubpath {
		b.command("M", "", k.Anchor)
		b.first = k
		b.inSubpath = true
	} else {
		b.segment(b.last, k, "")
	}
	b.last = k

	b.count--
	if b.count == 0 {
		b.segment(b.last, b.first, " Z")
		b.inSubpath = false
	}
}

// segment emits the segment from the anchor of k0 to the anchor of k1.
// A straight line is used if both control points coincide with their
// anchors, otherwise a cubic Bézier curve.
func (b *builder) segment(k0, k1 Knot, suffix string) {
	if k0.Trailing == k0.Anchor && k1.Leading == k1.Anchor {
		b.command("L", suffix, k1.Anchor)
	} else {
		b.command("C", suffix, k0.Trailing, k1.Leading, k1.Anchor)
	}
}

func (b *builder) command(op, suffix string, pts ...Point) {
	b.path.WriteString(op)
	for _, p := range pts {
		b.path.WriteByte(' ')
		b.path.WriteString(formatCoord(p.X))
		b.path.WriteByte(' ')
		b.path.WriteString(formatCoord(p.Y))
	}
	b.path.WriteString(suffix)
	b.path.WriteByte('\n')
}

// formatCoord formats v with at most three decimal digits.
func formatCoord(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
