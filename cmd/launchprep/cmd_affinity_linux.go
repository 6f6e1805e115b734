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

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thediveo/launchkit/cpus"
	"github.com/thediveo/launchkit/process"
)

func addPlatformCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newAffinityCmd())
}

func newAffinityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "affinity [PID]",
		Short: "show the CPU affinity of a process, defaulting to this process",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid := os.Getpid()
			if len(args) == 1 {
				var err error
				if pid, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid PID %q: %w", args[0], err)
				}
			}
			info, err := readProcessInfo(pid)
			if err != nil {
				return err
			}
			set, err := cpus.Affinity(pid)
			if err != nil {
				return fmt.Errorf("cannot query affinity of %s: %w", info, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "process: %s\ncpus: %s\nmask: %s\n",
				info, set, set.Mask().Hex())
			return err
		},
	}
}

// readProcessInfo returns the process information for the specified PID from
// its procfs status file.
func readProcessInfo(pid int) (*process.Info, error) {
	status, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/status")
	if err != nil {
		return nil, fmt.Errorf("cannot read status of process %d: %w", pid, err)
	}
	return parseProcessStatus(pid, status)
}

// parseProcessStatus returns the process information from the contents of a
// procfs status file. A missing “Name:” field results in an anonymous process
// Info, but a missing or malformed “PPid:” field is an error.
func parseProcessStatus(pid int, status []byte) (*process.Info, error) {
	var name []byte
	hasName := false
	var ppid int
	hasPPid := false
	scanner := bufio.NewScanner(bytes.NewReader(status))
	for scanner.Scan() {
		key, value, ok := bytes.Cut(scanner.Bytes(), []byte(":"))
		if !ok {
			continue
		}
		value = bytes.TrimSpace(value)
		switch string(key) {
		case "Name":
			name, hasName = bytes.Clone(value), true
		case "PPid":
			v, err := strconv.Atoi(string(value))
			if err != nil {
				return nil, fmt.Errorf("malformed parent PID of process %d: %w", pid, err)
			}
			ppid, hasPPid = v, true
		}
	}
	if !hasPPid {
		return nil, fmt.Errorf("missing parent PID of process %d", pid)
	}
	if !hasName {
		return process.NewAnonymousInfo(pid, ppid), nil
	}
	return process.NewInfo(pid, ppid, string(name)), nil
}
