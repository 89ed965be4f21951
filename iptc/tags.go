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

package iptc

import "fmt"

// Tag identifies a dataset in the IPTC application record (record 2).
type Tag int

// Datasets of the IPTC-IIM application record.
const (
	Unknown Tag = -1

	RecordVersion                 Tag = 0
	ObjectType                    Tag = 3
	ObjectAttribute               Tag = 4
	Title                         Tag = 5 // object name
	EditStatus                    Tag = 7
	EditorialUpdate               Tag = 8
	Priority                      Tag = 10 // urgency
	SubjectReference              Tag = 12
	Category                      Tag = 15
	SupplementalCategories        Tag = 20
	FixtureIdentifier             Tag = 22
	Keyword                       Tag = 25
	LocationCode                  Tag = 26
	LocationName                  Tag = 27
	ReleaseDate                   Tag = 30
	ReleaseTime                   Tag = 35
	ExpirationDate                Tag = 37
	ExpirationTime                Tag = 38
	SpecialInstructions           Tag = 40
	ActionAdvised                 Tag = 42
	ReferenceService              Tag = 45
	ReferenceDate                 Tag = 47
	ReferenceNumber               Tag = 50
	CreatedDate                   Tag = 55
	CreatedTime                   Tag = 60
	DigitalCreationDate           Tag = 62
	DigitalCreationTime           Tag = 63
	OriginatingProgram            Tag = 65
	ProgramVersion                Tag = 70
	ObjectCycle                   Tag = 75
	Byline                        Tag = 80
	BylineTitle                   Tag = 85
	City                          Tag = 90
	SubLocation                   Tag = 92
	ProvinceState                 Tag = 95
	CountryCode                   Tag = 100
	Country                       Tag = 101
	OriginalTransmissionReference Tag = 103
	Headline                      Tag = 105
	Credit                        Tag = 110
	Source                        Tag = 115
	CopyrightNotice               Tag = 116
	Contact                       Tag = 118
	Caption                       Tag = 120
	LocalCaption                  Tag = 121
	CaptionWriter                 Tag = 122
	ImageType                     Tag = 130
	ImageOrientation              Tag = 131
	LanguageIdentifier            Tag = 135
	AudioType                     Tag = 150
	AudioSamplingRate             Tag = 151
	AudioSamplingResolution       Tag = 152
	AudioDuration                 Tag = 153
	AudioOutcue                   Tag = 154
	PreviewFileFormat             Tag = 200
	PreviewFileFormatVersion      Tag = 201
	PreviewData                   Tag = 202
)

type tagKind int

const (
	kindText tagKind = iota
	kindDate
	kindTime
)

type tagInfo struct {
	name       string
	repeatable bool
	kind       tagKind
}

var tags = map[Tag]tagInfo{
	RecordVersion:                 {name: "RecordVersion"},
	ObjectType:                    {name: "ObjectType"},
	ObjectAttribute:               {name: "ObjectAttribute", repeatable: true},
	Title:                         {name: "Title"},
	EditStatus:                    {name: "EditStatus"},
	EditorialUpdate:               {name: "EditorialUpdate"},
	Priority:                      {name: "Priority"},
	SubjectReference:              {name: "SubjectReference", repeatable: true},
	Category:                      {name: "Category"},
	SupplementalCategories:        {name: "SupplementalCategories", repeatable: true},
	FixtureIdentifier:             {name: "FixtureIdentifier"},
	Keyword:                       {name: "Keyword", repeatable: true},
	LocationCode:                  {name: "LocationCode", repeatable: true},
	LocationName:                  {name: "LocationName", repeatable: true},
	ReleaseDate:                   {name: "ReleaseDate", kind: kindDate},
	ReleaseTime:                   {name: "ReleaseTime", kind: kindTime},
	ExpirationDate:                {name: "ExpirationDate", kind: kindDate},
	ExpirationTime:                {name: "ExpirationTime", kind: kindTime},
	SpecialInstructions:           {name: "SpecialInstructions"},
	ActionAdvised:                 {name: "ActionAdvised"},
	ReferenceService:              {name: "ReferenceService", repeatable: true},
	ReferenceDate:                 {name: "ReferenceDate", repeatable: true, kind: kindDate},
	ReferenceNumber:               {name: "ReferenceNumber", repeatable: true},
	CreatedDate:                   {name: "CreatedDate", kind: kindDate},
	CreatedTime:                   {name: "CreatedTime", kind: kindTime},
	DigitalCreationDate:           {name: "DigitalCreationDate", kind: kindDate},
	DigitalCreationTime:           {name: "DigitalCreationTime", kind: kindTime},
	OriginatingProgram:            {name: "OriginatingProgram"},
	ProgramVersion:                {name: "ProgramVersion"},
	ObjectCycle:                   {name: "ObjectCycle"},
	Byline:                        {name: "Byline", repeatable: true},
	BylineTitle:                   {name: "BylineTitle", repeatable: true},
	City:                          {name: "City"},
	SubLocation:                   {name: "SubLocation"},
	ProvinceState:                 {name: "ProvinceState"},
	CountryCode:                   {name: "CountryCode"},
	Country:                       {name: "Country"},
	OriginalTransmissionReference: {name: "OriginalTransmissionReference"},
	Headline:                      {name: "Headline"},
	Credit:                        {name: "Credit"},
	Source:                        {name: "Source"},
	CopyrightNotice:               {name: "CopyrightNotice"},
	Contact:                       {name: "Contact", repeatable: true},
	Caption:                       {name: "Caption"},
	LocalCaption:                  {name: "LocalCaption", repeatable: true},
	CaptionWriter:                 {name: "CaptionWriter", repeatable: true},
	ImageType:                     {name: "ImageType"},
	ImageOrientation:              {name: "ImageOrientation"},
	LanguageIdentifier:            {name: "LanguageIdentifier"},
	AudioType:                     {name: "AudioType"},
	AudioSamplingRate:             {name: "AudioSamplingRate"},
	AudioSamplingResolution:       {name: "AudioSamplingResolution"},
	AudioDuration:                 {name: "AudioDuration"},
	AudioOutcue:                   {name: "AudioOutcue"},
	PreviewFileFormat:             {name: "PreviewFileFormat"},
	PreviewFileFormatVersion:      {name: "PreviewFileFormatVersion"},
	PreviewData:                   {name: "PreviewData"},
}

// tagFromByte maps a dataset number to a Tag.  Dataset numbers which are not
// listed above map to [Unknown].
func tagFromByte(b byte) Tag {
	if _, ok := tags[Tag(b)]; ok {
		return Tag(b)
	}
	return Unknown
}

func (t Tag) String() string {
	if info, ok := tags[t]; ok {
		return info.name
	}
	if t == Unknown {
		return "Unknown"
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// IsRepeatable reports whether a dataset may occur more than once.
func (t Tag) IsRepeatable() bool {
	return tags[t].repeatable
}

// IsDate reports whether the dataset holds a date in the form CCYYMMDD.
func (t Tag) IsDate() bool {
	info, ok := tags[t]
	return ok && info.kind == kindDate
}

// IsTime reports whether the dataset holds a time in the form HHMMSS±HHMM.
func (t Tag) IsTime() bool {
	info, ok := tags[t]
	return ok && info.kind == kindTime
}

func (t Tag) isValid() bool {
	_, ok := tags[t]
	return ok
}
