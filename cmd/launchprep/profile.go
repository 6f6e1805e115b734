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
	"os"

	"github.com/thediveo/launchkit/cmdline"
	"github.com/thediveo/launchkit/cpus"
	"github.com/thediveo/launchkit/preset"
	"gopkg.in/yaml.v3"
)

// Profile describes a process launch: what to run, on which CPUs, and using
// which emulation preset.
type Profile struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
	// CPUs lists the CPU indices separated by commas, such as "0,1,4".
	CPUs string `yaml:"cpus,omitempty"`
	// CPUList is an alternative to CPUs in kernel list format, such as "0-3".
	CPUList string `yaml:"cpulist,omitempty"`
	Preset  string `yaml:"preset,omitempty"`
}

// Plan is a Profile resolved into what a process launcher needs.
type Plan struct {
	Name         string   `yaml:"name"`
	Argv         []string `yaml:"argv"`
	Mask         uint64   `yaml:"mask"`
	MaskHex      string   `yaml:"mask_hex"`
	CPUs         string   `yaml:"cpus"`
	Preset       string   `yaml:"preset,omitempty"`
	CustomPreset bool     `yaml:"custom_preset,omitempty"`
}

// LoadProfile reads a launch Profile from the YAML file at path.
func LoadProfile(path string) (Profile, error) {
	var p Profile
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return p, nil
}

// Plan resolves this profile into a launch Plan. An empty CPU selection
// results in an all-zero mask, leaving it to the launcher to not restrict the
// process at all.
func (p Profile) Plan() (Plan, error) {
	plan := Plan{
		Name: p.Name,
		Argv: cmdline.Split(p.Command),
	}
	if len(plan.Argv) == 0 {
		return Plan{}, fmt.Errorf("profile %q has no command", p.Name)
	}

	var mask cpus.Mask
	switch {
	case p.CPUs != "" && p.CPUList != "":
		return Plan{}, fmt.Errorf("profile %q specifies both cpus and cpulist", p.Name)
	case p.CPUList != "":
		m, err := maskFromList(p.CPUList)
		if err != nil {
			return Plan{}, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		mask = m
	default:
		mask = cpus.MaskFromCSV(p.CPUs)
	}
	plan.Mask = uint64(mask)
	plan.MaskHex = mask.Hex()
	plan.CPUs = mask.String()

	if p.Preset != "" {
		custom, err := preset.New(p.Preset, p.Preset).IsCustom()
		if err != nil {
			return Plan{}, err
		}
		if !custom && !preset.IsStandard(p.Preset) {
			return Plan{}, fmt.Errorf("profile %q: unknown preset %q", p.Name, p.Preset)
		}
		plan.Preset = p.Preset
		plan.CustomPreset = custom
	}
	slog.Info("planned launch",
		slog.String("profile", p.Name),
		slog.Int("args", len(plan.Argv)),
		slog.String("cpus", plan.CPUs))
	return plan, nil
}
