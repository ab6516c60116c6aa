// Copyright 2025 sixelcore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lanes4 provides a portable 4-lane uint32 vector, the software
// fallback shape for platforms/builds with no hardware SIMD available.
// It mirrors the primitive set real SIMD ISAs expose for this kind of
// bitmask blend (splat, unaligned load/store, and, and-not, or,
// equality-to-mask) so that a hardware-backed implementation can be
// dropped in later without changing call sites.
package lanes4

// Vec is four uint32 lanes.
type Vec [4]uint32

// Splat broadcasts v into all four lanes.
func Splat(v uint32) Vec {
	return Vec{v, v, v, v}
}

// Load reads four lanes from src[0:4]. src may be shorter than 4 elements,
// in which case the missing lanes are zero; callers that know src has at
// least 4 elements get a plain copy.
func Load(src []uint32) Vec {
	var v Vec
	n := copy(v[:], src)
	_ = n
	return v
}

// Store writes the vector's four lanes into dst[0:4]. dst must have at
// least 4 elements.
func Store(dst []uint32, v Vec) {
	copy(dst[:4], v[:])
}

// And returns the bitwise AND of a and b, lane-wise.
func And(a, b Vec) Vec {
	return Vec{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

// AndNot returns a &^ b, lane-wise (a with the bits set in b cleared).
func AndNot(a, b Vec) Vec {
	return Vec{a[0] &^ b[0], a[1] &^ b[1], a[2] &^ b[2], a[3] &^ b[3]}
}

// Or returns the bitwise OR of a and b, lane-wise.
func Or(a, b Vec) Vec {
	return Vec{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

// Eq returns an all-ones (0xFFFFFFFF) mask lane where a and b are equal,
// and an all-zeros mask lane otherwise.
func Eq(a, b Vec) Vec {
	var out Vec
	for i := range a {
		if a[i] == b[i] {
			out[i] = 0xFFFFFFFF
		}
	}
	return out
}
