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

// Package icc reads the header and the descriptive tags of ICC colour
// profiles.
//
// Use [Decode] to read a profile from binary data and [Profile.Encode] to
// convert a profile back to binary form.  Colour conversion is not
// implemented; the package only exposes what is needed to identify a
// profile: its class, colour space, version and text tags such as
// [Profile.Description] and [Profile.Copyright].
//
// Profiles which are used repeatedly can be shared through a [Cache].
package icc

import (
	"fmt"
	"strings"
	"time"
)

// Profile represents an ICC colour profile.
//
// TagData contains the raw binary data for each tag in the profile.
// Profiles returned by a [Cache] are shared between callers and must not be
// modified.
type Profile struct {
	PreferredCMMType   uint32
	Version            Version
	Class              ProfileClass
	ColorSpace         ColorSpace // device colour space (e.g. RGBSpace, CMYKSpace)
	PCS                ColorSpace // Profile Connection Space (PCSXYZSpace or PCSLabSpace)
	CreationDate       time.Time
	PrimaryPlatform    uint32
	Flags              uint32
	DeviceManufacturer uint32
	DeviceModel        uint32
	DeviceAttributes   uint64
	RenderingIntent    uint32
	Creator            uint32

	// CheckSum indicates whether the profile's embedded checksum is valid.
	// This is only meaningful for profiles read using Decode.
	CheckSum CheckSum

	TagData map[TagType][]byte
}

// Version is a version of the ICC profile format.
type Version uint32

// Some well-known versions of the ICC profile format.
const (
	Version2_1_0 Version = 0x0210_0000
	Version2_4_0 Version = 0x0240_0000
	Version4_0_0 Version = 0x0400_0000
	Version4_3_0 Version = 0x0430_0000
	Version4_4_0 Version = 0x0440_0000

	currentVersion = Version4_4_0
)

func (v Version) String() string {
	major := int(v >> 24)
	minor := int(v >> 20 & 0xF)
	bugfix := int(v >> 16 & 0xF)
	return fmt.Sprintf("%d.%d.%d", major, minor, bugfix)
}

// ProfileClass is the ICC profile or device class.
type ProfileClass uint32

// Profile classes defined in the ICC specification.
const (
	InputDeviceProfile   ProfileClass = 0x73636E72 // "scnr"
	DisplayDeviceProfile ProfileClass = 0x6D6E7472 // "mntr"
	OutputDeviceProfile  ProfileClass = 0x70727472 // "prtr"
	DeviceLinkProfile    ProfileClass = 0x6C696E6B // "link"
	ColorSpaceProfile    ProfileClass = 0x73706163 // "spac"
	AbstractProfile      ProfileClass = 0x61627374 // "abst"
	NamedColorProfile    ProfileClass = 0x6E6D636C // "nmcl"
)

func (c ProfileClass) String() string {
	return signature(uint32(c))
}

// ColorSpace identifies a colour space in an ICC profile.
type ColorSpace uint32

// Colour spaces which are commonly found in image files.
const (
	CIEXYZSpace ColorSpace = 0x58595A20 // "XYZ "
	CIELabSpace ColorSpace = 0x4C616220 // "Lab "
	YCbCrSpace  ColorSpace = 0x59436272 // "YCbr"
	RGBSpace    ColorSpace = 0x52474220 // "RGB "
	GraySpace   ColorSpace = 0x47524159 // "GRAY"
	HSVSpace    ColorSpace = 0x48535620 // "HSV "
	HLSSpace    ColorSpace = 0x484C5320 // "HLS "
	CMYKSpace   ColorSpace = 0x434D594B // "CMYK"
	CMYSpace    ColorSpace = 0x434D5920 // "CMY "

	PCSXYZSpace = CIEXYZSpace
	PCSLabSpace = CIELabSpace
)

func (s ColorSpace) String() string {
	return signature(uint32(s))
}

// signature formats a four-character code, dropping trailing spaces.
// Codes which are not printable ASCII are shown in hexadecimal.
func signature(x uint32) string {
	bb := []byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
	for _, c := range bb {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("0x%08X", x)
		}
	}
	return strings.TrimRight(string(bb), " ")
}

// CheckSum contains information about the Profile ID field.
type CheckSum int

// Possible values of the CheckSum field.
const (
	CheckSumMissing CheckSum = iota
	CheckSumValid
	CheckSumInvalid
)

func (c CheckSum) String() string {
	switch c {
	case CheckSumValid:
		return "Valid"
	case CheckSumInvalid:
		return "Invalid"
	default:
		return "Missing"
	}
}
