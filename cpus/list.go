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

package cpus

import (
	"errors"
	"strconv"
	"strings"

	"github.com/thediveo/faf"
)

// List is a list of CPU [from...to] ranges. CPU numbers are starting from zero.
type List [][2]uint

// String returns the CPU list in textual format, with the individual ranges
// “x-y” separated by “,” and single CPU ranges collapsed into “x” (instead of
// “x-x”).
func (l List) String() string {
	var b strings.Builder
	for idx, cpurange := range l {
		if idx > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(cpurange[0]), 10))
		if cpurange[0] != cpurange[1] {
			b.WriteByte('-')
			b.WriteString(strconv.FormatUint(uint64(cpurange[1]), 10))
		}
	}
	return b.String()
}

// NewList returns a new CPU List for the given text in Linux kernel CPU list
// format, such as “0-3,8,10-11”. If the text is malformed then an error is
// returned instead.
//
// In contrast to [MaskFromCSV], NewList is strict: it rejects whitespace,
// inverted ranges, and anything else that isn't a CPU number or range.
func NewList(b []byte) (List, error) {
	if hasOverlongNumber(b) {
		return nil, errors.New("CPU number out of range")
	}
	bs := faf.NewBytestring(b)
	l := List{}
	for !bs.EOL() {
		from, ok := bs.Uint64()
		if !ok {
			return nil, errors.New("expected unsigned integer number")
		}
		to := from
		if !bs.EOL() {
			switch ch, _ := bs.Next(); ch {
			case '-':
				if to, ok = bs.Uint64(); !ok {
					return nil, errors.New("expected unsigned integer number")
				}
				if to < from {
					return nil, errors.New("expected range end not below range start")
				}
				// after a range, there must be either the end of the list or
				// another range following.
				if !bs.EOL() {
					if ch, _ := bs.Next(); ch != ',' {
						return nil, errors.New("expected ','")
					}
					if bs.EOL() {
						return nil, errors.New("expected unsigned integer number")
					}
				}
			case ',':
				if bs.EOL() {
					return nil, errors.New("expected unsigned integer number")
				}
			default:
				return nil, errors.New("expected '-' or ','")
			}
		}
		l = append(l, [2]uint{uint(from), uint(to)})
	}
	return l, nil
}

// Set returns the CPU Set corresponding with this list.
func (l List) Set() Set {
	if len(l) == 0 {
		return Set{}
	}
	// Do last range first to allocate only once.
	var s Set
	for i := range l {
		r := l[len(l)-i-1]
		s = s.AddRange(r[0], r[1])
	}
	return s
}

// Mask returns the Mask for the CPUs 0-63 in this list; any higher CPUs are
// dropped.
func (l List) Mask() Mask {
	var m Mask
	for _, r := range l {
		if r[0] >= maskBits {
			continue
		}
		m |= MaskFromRange(int(r[0]), int(min(r[1], maskBits-1))+1)
	}
	return m
}
