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

// Package process describes already running processes as discovered by some
// OS process listing facility.
package process

import (
	"strconv"
)

// Info describes a running process by its PID, parent PID, and optional name.
// An Info is immutable once created.
//
// Info values aren't comparable: two Info objects describe distinct process
// observations even if all their fields are the same. Use *Info to pass them
// around and compare pointers when identity matters.
type Info struct {
	_       [0]func() // not comparable
	pid     int
	ppid    int
	name    string
	hasName bool
}

// NewInfo returns a new Info for the named process with the specified PID and
// parent PID. Neither PID nor parent PID are checked in any way; zero and
// negative values are returned unchanged by [Info.PID] and [Info.PPID].
func NewInfo(pid, ppid int, name string) *Info {
	return &Info{pid: pid, ppid: ppid, name: name, hasName: true}
}

// NewAnonymousInfo returns a new Info without any process name.
func NewAnonymousInfo(pid, ppid int) *Info {
	return &Info{pid: pid, ppid: ppid}
}

// PID returns the process ID.
func (i *Info) PID() int { return i.pid }

// PPID returns the parent process ID.
func (i *Info) PPID() int { return i.ppid }

// Name returns the process name and true, or "" and false if the process has
// no name. An empty name is still a name.
func (i *Info) Name() (string, bool) { return i.name, i.hasName }

// String returns a textual description of the form “name (1234) child of 1”,
// using “?” in place of a missing name.
func (i *Info) String() string {
	name := "?"
	if i.hasName {
		name = strconv.Quote(i.name)
	}
	return name + " (" + strconv.Itoa(i.pid) + ") child of " + strconv.Itoa(i.ppid)
}
