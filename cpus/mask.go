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
	"strconv"
	"strings"

	"github.com/thediveo/faf"
)

// Mask is an integer CPU affinity mask: bit i (with the least significant bit
// being bit 0) is set if CPU i is selected. A Mask covers CPUs 0-63; CPU
// indices beyond that range never contribute to a Mask.
type Mask uint64

// maskBits is the number of CPUs a Mask can represent.
const maskBits = 64

// maskBit returns the Mask with only the specified CPU set, or an empty Mask
// if the CPU cannot be represented.
func maskBit(cpu uint) Mask {
	if cpu >= maskBits {
		return 0
	}
	return Mask(1) << cpu
}

// MaskFromCSV returns the Mask for a comma-separated list of CPU indices, such
// as “0,1,4”. Surrounding whitespace of each index is ignored, so “0, 1, 2”
// selects the same CPUs as “0,1,2”. Fields that aren't unsigned integer
// numbers are silently skipped. An empty list results in an empty Mask.
func MaskFromCSV(csv string) Mask {
	var m Mask
	if csv == "" {
		return m
	}
	for _, field := range strings.Split(csv, ",") {
		field = strings.TrimSpace(field)
		if field == "" || hasOverlongNumber([]byte(field)) {
			continue
		}
		bs := faf.NewBytestring([]byte(field))
		cpu, ok := bs.Uint64()
		if !ok || !bs.EOL() {
			continue
		}
		if cpu < maskBits {
			m |= maskBit(uint(cpu))
		}
	}
	return m
}

// MaskFromBools returns the Mask where bit i is set if selected[i] is true.
func MaskFromBools(selected []bool) Mask {
	var m Mask
	for cpu, sel := range selected {
		if sel {
			m |= maskBit(uint(cpu))
		}
	}
	return m
}

// MaskFromRange returns the Mask with the CPUs from (inclusive) up to to
// (exclusive) set. An empty or inverted range, where from >= to, returns an
// empty Mask. Negative CPU indices are ignored.
func MaskFromRange(from, to int) Mask {
	var m Mask
	if from >= to {
		return m
	}
	for cpu := max(from, 0); cpu < min(to, maskBits); cpu++ {
		m |= maskBit(uint(cpu))
	}
	return m
}

// maxUint64Digits is the largest count of decimal digits that always fits
// into an uint64.
const maxUint64Digits = 19

// hasOverlongNumber reports whether b contains a decimal number with more
// significant digits than always fit into an uint64. Such numbers would
// otherwise silently wrap around when parsed.
func hasOverlongNumber(b []byte) bool {
	digits := 0
	for _, ch := range b {
		switch {
		case ch < '0' || ch > '9':
			digits = 0
		case ch == '0' && digits == 0:
			// leading zeros aren't significant
		default:
			digits++
			if digits > maxUint64Digits {
				return true
			}
		}
	}
	return false
}

// MaskHex returns the lower-case hexadecimal representation of the Mask for
// the comma-separated list of CPU indices, without any leading zeros or “0x”
// prefix. See also [MaskFromCSV].
func MaskHex(csv string) string {
	return MaskFromCSV(csv).Hex()
}

// Hex returns the Mask in lower-case hexadecimal representation without
// leading zeros; the empty Mask is “0”.
func (m Mask) Hex() string {
	return strconv.FormatUint(uint64(m), 16)
}

// IsSet reports whether cpu is in this Mask.
func (m Mask) IsSet(cpu uint) bool {
	return m&maskBit(cpu) != 0
}

// Set returns the CPU Set corresponding with this Mask.
func (m Mask) Set() Set {
	return Set{uint64(m)}
}

// List returns the list of CPU ranges corresponding with this Mask.
func (m Mask) List() List {
	return m.Set().List()
}

// String returns the CPUs in this Mask in textual list format, such as
// “0-3,6”.
func (m Mask) String() string {
	return m.List().String()
}
