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
	"errors"
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
)

func TestCacheLoadOnce(t *testing.T) {
	data := testProfile().Encode()

	var calls atomic.Int32
	c := NewCacheFunc(func(name string) ([]byte, error) {
		calls.Add(1)
		return data, nil
	})

	const n = 32
	results := make([]*Profile, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := c.Load(SRGB)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = p
		}(i)
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("profile was loaded %d times", got)
	}
	for i, p := range results {
		if p != results[0] {
			t.Errorf("result %d is a different instance", i)
		}
	}
}

func TestCacheFS(t *testing.T) {
	rgb := testProfile()
	cmyk := testProfile()
	cmyk.ColorSpace = CMYKSpace
	cmyk.Class = OutputDeviceProfile

	fsys := fstest.MapFS{
		SRGB + ".icc":            {Data: rgb.Encode()},
		USWebCoatedSWOP + ".icc": {Data: cmyk.Encode()},
		"broken.icc":             {Data: []byte("not a profile")},
	}
	c := NewCache(fsys)

	p, err := c.Load(USWebCoatedSWOP)
	if err != nil {
		t.Fatal(err)
	}
	if p.ColorSpace != CMYKSpace {
		t.Errorf("colour space = %s, want CMYK", p.ColorSpace)
	}
	q, err := c.Load(SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if q.ColorSpace != RGBSpace {
		t.Errorf("colour space = %s, want RGB", q.ColorSpace)
	}

	_, err = c.Load(AppleRGB)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing profile: err = %v, want fs.ErrNotExist", err)
	}
	_, err = c.Load("broken")
	var e *InvalidProfileError
	if !errors.As(err, &e) {
		t.Errorf("broken profile: err = %v, want *InvalidProfileError", err)
	}
}

func TestCacheRetriesAfterError(t *testing.T) {
	data := testProfile().Encode()
	fail := true
	c := NewCacheFunc(func(name string) ([]byte, error) {
		if fail {
			fail = false
			return nil, errors.New("temporary failure")
		}
		return data, nil
	})

	if _, err := c.Load(AdobeRGB1998); err == nil {
		t.Fatal("first load succeeded")
	}
	if _, err := c.Load(AdobeRGB1998); err != nil {
		t.Errorf("second load failed: %v", err)
	}
}
