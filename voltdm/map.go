// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package voltdm

// Entry binds a voltage domain name to the rail feeding it.
type Entry struct {
	Name   string
	Params *Params
}

// Map is an ordered list of entries.
//
// An entry with an empty Name terminates the map; anything after it is
// ignored.
type Map []Entry

// Entries returns the entries up to the terminator.
func (m Map) Entries() []Entry {
	for i, e := range m {
		if e.Name == "" {
			return m[:i]
		}
	}
	return m
}

// Lookup returns the first entry named exactly name.
func (m Map) Lookup(name string) (*Params, bool) {
	if name == "" {
		return nil, false
	}
	for _, e := range m.Entries() {
		if e.Name == name {
			return e.Params, true
		}
	}
	return nil, false
}

// Names returns the domain names in order.
func (m Map) Names() []string {
	entries := m.Entries()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
