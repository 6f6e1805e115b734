// Copyright 2024 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

// Package preset names emulation presets that a launcher applies when starting
// a process. Presets are either one of the standard presets or user-defined
// custom presets whose identifiers start with [Custom].
package preset

import (
	"errors"
	"fmt"
	"strings"
)

// Identifiers of the standard presets, as well as the identifier prefix of
// custom presets.
const (
	Stability     = "STABILITY"
	Compatibility = "COMPATIBILITY"
	Intermediate  = "INTERMEDIATE"
	Performance   = "PERFORMANCE"
	Custom        = "CUSTOM"
)

// ErrInvalidState is returned by operations that require a preset identifier
// when the preset has none.
var ErrInvalidState = errors.New("invalid state")

// Preset is an identifier together with a display name. Preset values aren't
// comparable; field-identical presets still are distinct objects.
type Preset struct {
	_     [0]func() // not comparable
	id    string
	hasID bool
	name  string
}

// New returns a new Preset with the specified identifier and display name.
func New(id, name string) *Preset {
	return &Preset{id: id, hasID: true, name: name}
}

// NewWithoutID returns a new Preset lacking an identifier, so it only has a
// display name. Such a preset cannot be categorized; see [Preset.IsCustom].
func NewWithoutID(name string) *Preset {
	return &Preset{name: name}
}

// ID returns the preset identifier and true, or "" and false if the preset has
// no identifier.
func (p *Preset) ID() (string, bool) { return p.id, p.hasID }

// Name returns the display name.
func (p *Preset) Name() string { return p.name }

// String returns the display name.
func (p *Preset) String() string { return p.name }

// IsCustom reports whether this is a user-defined preset, that is, its
// identifier starts with “CUSTOM” (case-sensitive). It returns an error
// wrapping [ErrInvalidState] if the preset has no identifier.
func (p *Preset) IsCustom() (bool, error) {
	if !p.hasID {
		return false, fmt.Errorf("preset %q without identifier: %w", p.name, ErrInvalidState)
	}
	return strings.HasPrefix(p.id, Custom), nil
}

// IsStandard reports whether id identifies one of the standard presets.
func IsStandard(id string) bool {
	switch id {
	case Stability, Compatibility, Intermediate, Performance:
		return true
	}
	return false
}
