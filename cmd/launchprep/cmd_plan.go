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
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPlanCmd() *cobra.Command {
	var profilePath string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "resolve a launch profile into argument vector and affinity mask",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := LoadProfile(profilePath)
			if err != nil {
				return err
			}
			plan, err := profile.Plan()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(plan); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&profilePath, "file", "f", "", "launch profile YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
