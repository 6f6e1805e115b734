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
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thediveo/launchkit/cmdline"
)

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split COMMAND",
		Short: "split a launch command into its arguments, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := cmdline.Split(args[0])
			slog.Debug("split command", slog.String("command", args[0]), slog.Int("args", len(argv)))
			for _, arg := range argv {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
