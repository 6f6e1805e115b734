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
	"sync/atomic"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// setsize reflects the dynamically determined size of CPU sets on this system
// (size in uint64 words). This is usually smaller than the fixed-sized
// [unix.CPUSet] that Go's [unix.SchedGetaffinity] uses.
var setsize atomic.Uint64
var wordbytesize = uint64(unsafe.Sizeof(Set{0}[0]))

func init() {
	setsize.Store(1)
}

// Affinity returns the affinity CPU Set of the task or process with the passed
// TID/PID. Otherwise, it returns an error. If tid is zero, then the affinity
// CPU set of the calling thread is returned (make sure to have the OS-level
// thread locked to the calling go routine in this case).
//
// We don't use [unix.SchedGetaffinity] as this is tied to the fixed size
// [unix.CPUSet] type; instead, we dynamically figure out the size needed and
// cache the size internally.
func Affinity(tid int) (Set, error) {
	var set Set

	setlenStart := setsize.Load()
	setlen := setlenStart
	for {
		set = make(Set, setlen)
		// SYS_SCHED_GETAFFINITY does not block, so RawSyscall is fine here,
		// following Go's stdlib implementation.
		_, _, e := unix.RawSyscall(unix.SYS_SCHED_GETAFFINITY,
			uintptr(tid), uintptr(setlen*wordbytesize), uintptr(unsafe.Pointer(&set[0])))
		if e != 0 {
			if e == unix.EINVAL {
				setlen *= 2
				continue
			}
			return nil, e
		}
		// Publish the new size unless another go routine already raised it
		// even higher.
		for setlen > setlenStart && !setsize.CompareAndSwap(setlenStart, setlen) {
			setlenStart = setsize.Load()
		}
		return set, nil
	}
}

// TaskMask returns the affinity Mask of the task or process with the passed
// TID/PID, covering only CPUs 0-63. If tid is zero, the calling thread is
// queried.
func TaskMask(tid int) (Mask, error) {
	set, err := Affinity(tid)
	if err != nil {
		return 0, err
	}
	return set.Mask(), nil
}

// SetAffinity sets the CPU affinities for the specified task/process.
// Otherwise, it returns an error. It is an error trying to set no affinities.
func SetAffinity(tid int, cpus Set) error {
	if len(cpus) == 0 {
		return syscall.EINVAL
	}
	_, _, e := unix.RawSyscall(unix.SYS_SCHED_SETAFFINITY,
		uintptr(tid), uintptr(uint64(len(cpus))*wordbytesize), uintptr(unsafe.Pointer(&cpus[0])))
	if e != 0 {
		return e
	}
	return nil
}

// PinTask restricts the task or process with the passed TID/PID to the CPUs in
// this Mask. If tid is zero, the calling thread gets pinned. Pinning to an
// empty Mask fails.
func (m Mask) PinTask(tid int) error {
	return SetAffinity(tid, m.Set())
}
