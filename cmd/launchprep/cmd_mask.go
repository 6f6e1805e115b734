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
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/launchkit/cpus"
)

const (
	csvFlag    = "csv"
	listFlag   = "list"
	rangeFlag  = "range"
	selectFlag = "select"
	hexFlag    = "hex"
)

// maxMaskCPU is the lowest CPU number that cannot be represented in a Mask.
const maxMaskCPU = 64

func newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "calculate the CPU affinity mask for a CPU selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := maskFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			slog.Debug("calculated mask", slog.String("cpus", m.String()))
			if hex, _ := cmd.Flags().GetBool(hexFlag); hex {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Hex())
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), uint64(m))
			return err
		},
	}
	flags := cmd.Flags()
	flags.String(csvFlag, "", "comma-separated CPU indices, such as \"0,2,3\"")
	flags.String(listFlag, "", "CPU list in kernel format, such as \"0-3,6\"")
	flags.String(rangeFlag, "", "half-open CPU index range FROM:TO, such as \"2:4\"")
	flags.String(selectFlag, "", "one 0 or 1 per CPU, starting with CPU 0, such as \"1010\"")
	flags.Bool(hexFlag, false, "print the mask in hexadecimal instead of decimal")
	cmd.MarkFlagsMutuallyExclusive(csvFlag, listFlag, rangeFlag, selectFlag)
	cmd.MarkFlagsOneRequired(csvFlag, listFlag, rangeFlag, selectFlag)
	return cmd
}

// maskFromFlags returns the Mask for whichever CPU selection flag has been
// specified.
func maskFromFlags(flags *pflag.FlagSet) (cpus.Mask, error) {
	switch {
	case flags.Changed(csvFlag):
		csv, _ := flags.GetString(csvFlag)
		return cpus.MaskFromCSV(csv), nil
	case flags.Changed(listFlag):
		text, _ := flags.GetString(listFlag)
		return maskFromList(text)
	case flags.Changed(rangeFlag):
		rng, _ := flags.GetString(rangeFlag)
		return maskFromRangeText(rng)
	case flags.Changed(selectFlag):
		sel, _ := flags.GetString(selectFlag)
		return maskFromSelection(sel)
	}
	return 0, errors.New("no CPU selection specified")
}

// maskFromList returns the Mask for a kernel format CPU list, warning about
// any CPUs that cannot be represented in a Mask.
func maskFromList(text string) (cpus.Mask, error) {
	l, err := cpus.NewList([]byte(text))
	if err != nil {
		return 0, fmt.Errorf("invalid CPU list %q: %w", text, err)
	}
	m := l.Mask()
	for _, r := range l {
		if r[1] >= maxMaskCPU {
			slog.Warn("CPUs beyond #63 dropped from mask",
				slog.String("list", l.String()), slog.String("mask", m.String()))
			break
		}
	}
	return m, nil
}

func maskFromRangeText(rng string) (cpus.Mask, error) {
	fromText, toText, ok := strings.Cut(rng, ":")
	if !ok {
		return 0, fmt.Errorf("invalid CPU range %q, expected FROM:TO", rng)
	}
	from, err := strconv.Atoi(fromText)
	if err != nil {
		return 0, fmt.Errorf("invalid CPU range start %q: %w", fromText, err)
	}
	to, err := strconv.Atoi(toText)
	if err != nil {
		return 0, fmt.Errorf("invalid CPU range end %q: %w", toText, err)
	}
	return cpus.MaskFromRange(from, to), nil
}

func maskFromSelection(sel string) (cpus.Mask, error) {
	selected := make([]bool, 0, len(sel))
	for idx, ch := range sel {
		switch ch {
		case '0':
			selected = append(selected, false)
		case '1':
			selected = append(selected, true)
		default:
			return 0, fmt.Errorf("invalid CPU selection %q at position %d, expected only 0 or 1",
				sel, idx)
		}
	}
	return cpus.MaskFromBools(selected), nil
}
