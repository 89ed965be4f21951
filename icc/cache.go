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

package icc

import (
	"fmt"
	"io/fs"
	"sync"
)

// Names of the profiles which image processing tools commonly ship.
// [NewCache] looks these up as "<name>.icc".
const (
	AdobeRGB1998    = "AdobeRGB1998"
	AppleRGB        = "AppleRGB"
	CoatedFOGRA39   = "CoatedFOGRA39"
	ColorMatchRGB   = "ColorMatchRGB"
	SRGB            = "SRGB"
	USWebCoatedSWOP = "USWebCoatedSWOP"
)

// Cache holds decoded profiles, so that every profile is decoded at most
// once.
//
// A Cache is safe for concurrent use.  Concurrent requests for a profile
// which is not yet in the cache wait for a single decode.  Profiles are
// never evicted.
type Cache struct {
	load func(name string) ([]byte, error)

	mu       sync.Mutex
	profiles map[string]*Profile
}

// NewCache returns a cache which reads the profile called name from the
// file "<name>.icc" in fsys.
func NewCache(fsys fs.FS) *Cache {
	return NewCacheFunc(func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name+".icc")
	})
}

// NewCacheFunc returns a cache which obtains the binary profile data from
// load.
func NewCacheFunc(load func(name string) ([]byte, error)) *Cache {
	return &Cache{
		load:     load,
		profiles: make(map[string]*Profile),
	}
}

// Load returns the profile with the given name.
//
// All callers requesting the same name receive the same *Profile, which
// must not be modified.  If loading or decoding fails, the error is returned
// and nothing is stored, so that a later call tries again.
func (c *Cache) Load(name string) (*Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.profiles[name]; ok {
		return p, nil
	}

	data, err := c.load(name)
	if err != nil {
		return nil, fmt.Errorf("icc: loading profile %q: %w", name, err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("icc: profile %q: %w", name, err)
	}
	c.profiles[name] = p
	return p, nil
}
