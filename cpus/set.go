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
	"fmt"
)

// Set is a CPU bit string, such as used for CPU affinity masks. See also
// [sched_getaffinity(2)]. In contrast to [Mask], a Set isn't limited to 64
// CPUs.
//
// [sched_getaffinity(2)]: https://man7.org/linux/man-pages/man2/sched_getaffinity.2.html
type Set []uint64

const bitsperword = 64

func setBitIndex(cpu uint) int {
	return int(cpu / bitsperword)
}

func setBitMask(cpu uint) uint64 {
	return uint64(1) << (cpu % bitsperword)
}

// IsSet reports whether cpu is in this CPU set.
func (s Set) IsSet(cpu uint) bool {
	if cpu >= uint(len(s))*bitsperword {
		return false
	}
	return s[setBitIndex(cpu)]&setBitMask(cpu) != 0
}

// AddRange adds the CPUs from the specified range [from..to] (both inclusive),
// returning an updated Set. This updated Set may or may not be the original
// Set. AddRange panics if from is larger than to.
func (s Set) AddRange(from, to uint) Set {
	if from > to {
		panic(fmt.Sprintf("invalid range %d-%d", from, to))
	}
	if need := setBitIndex(to) + 1; need > len(s) {
		s = append(s, make(Set, need-len(s))...)
	}
	for cpu := from; cpu <= to; cpu++ {
		s[setBitIndex(cpu)] |= setBitMask(cpu)
	}
	return s
}

// Mask returns the Mask for the CPUs 0-63 in this Set.
func (s Set) Mask() Mask {
	if len(s) == 0 {
		return 0
	}
	return Mask(s[0])
}

// String returns the CPUs in this set in textual list format. In list format,
// individual CPU ranges “x-y” are separated by “,”, and single CPU ranges
// collapsed into “x”.
func (s Set) String() string {
	return s.List().String()
}

// List returns the list of CPU ranges corresponding with this CPU Set. It
// fast-forwards through all-0s words outside a CPU range and all-1s words
// inside a CPU range.
func (s Set) List() List {
	cpulist := List{}
	inRange := false
	var from uint
	for wordidx, word := range s {
		if (word == 0 && !inRange) || (word == ^uint64(0) && inRange) {
			continue
		}
		base := uint(wordidx) * bitsperword
		for bitno := uint(0); bitno < bitsperword; bitno++ {
			isSet := word&(uint64(1)<<bitno) != 0
			switch {
			case isSet && !inRange:
				from, inRange = base+bitno, true
			case !isSet && inRange:
				cpulist = append(cpulist, [2]uint{from, base + bitno - 1})
				inRange = false
			}
		}
	}
	if inRange {
		cpulist = append(cpulist, [2]uint{from, uint(len(s))*bitsperword - 1})
	}
	return cpulist
}
