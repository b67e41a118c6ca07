// Package config loads planner tuning parameters from YAML, matching
// the navigation-stack convention (a YAML params file per node) that
// this module's original C++ counterpart was configured by.
//
// Parameter loading is explicitly an external collaborator to the
// search and smoother cores (spec §1/§6): neither of those packages
// imports config, and config never reaches back into them beyond the
// plain structs it fills in.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oceanic-robotics/gridplanner/logging"
	"github.com/oceanic-robotics/gridplanner/search"
	"github.com/oceanic-robotics/gridplanner/smoother"
)

// SearchConfig is the YAML-facing mirror of search.Options, using a
// string connectivity name instead of the search package's typed enum
// so the file format stays human-editable.
type SearchConfig struct {
	ConnectivityName string  `yaml:"connectivity"`
	TraverseUnknown  bool    `yaml:"traverse_unknown"`
	IterationCap     int     `yaml:"iteration_cap"`
	NeutralCost      float64 `yaml:"neutral_cost"`
}

// SmootherConfig is the YAML-facing mirror of smoother.Params.
type SmootherConfig struct {
	SmoothWeight    float64 `yaml:"smooth_weight"`
	CurvatureWeight float64 `yaml:"curvature_weight"`
	CostmapWeight   float64 `yaml:"costmap_weight"`
	DistanceWeight  float64 `yaml:"distance_weight"`
	MaxCurvature    float64 `yaml:"max_curvature"`
}

// Config is the top-level document shape.
type Config struct {
	Search   SearchConfig   `yaml:"search"`
	Smoother SmootherConfig `yaml:"smoother"`
}

// Default returns the configuration this repository ships as a
// starting point: 8-connected search with an unlimited iteration cap,
// and smoother weights favoring smoothness (2.0) over the curvature,
// costmap and distance terms (1.0 each).
func Default() Config {
	return Config{
		Search: SearchConfig{
			ConnectivityName: "moore",
			TraverseUnknown:  false,
			IterationCap:     0,
			NeutralCost:      search.DefaultNeutralCost,
		},
		Smoother: SmootherConfig{
			SmoothWeight:    2.0,
			CurvatureWeight: 1.0,
			CostmapWeight:   1.0,
			DistanceWeight:  1.0,
			MaxCurvature:    0.5,
		},
	}
}

// Load parses a YAML document from r, starting from Default() so an
// omitted field keeps its default rather than zeroing out.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Connectivity resolves the config's connectivity name into search's
// typed enum. An unrecognized name is treated as an explicit error
// rather than silently defaulting, since a typo here would otherwise
// silently change search behavior.
func (c SearchConfig) Connectivity() (search.Connectivity, error) {
	switch c.ConnectivityName {
	case "von_neumann", "":
		return search.VonNeumann, nil
	case "moore":
		return search.Moore, nil
	default:
		return 0, fmt.Errorf("config: unknown connectivity %q", c.ConnectivityName)
	}
}

// ToOptions converts SearchConfig into search.Options. logger is
// supplied by the caller since it isn't a YAML-serializable value.
func (c SearchConfig) ToOptions(logger logging.Logger) (search.Options, error) {
	connectivity, err := c.Connectivity()
	if err != nil {
		return search.Options{}, err
	}
	return search.Options{
		Connectivity:    connectivity,
		TraverseUnknown: c.TraverseUnknown,
		IterationCap:    c.IterationCap,
		NeutralCost:     c.NeutralCost,
		Logger:          logger,
	}, nil
}

// ToParams converts SmootherConfig into smoother.Params.
func (c SmootherConfig) ToParams() smoother.Params {
	return smoother.Params{
		SmoothWeight:    c.SmoothWeight,
		CurvatureWeight: c.CurvatureWeight,
		CostmapWeight:   c.CostmapWeight,
		DistanceWeight:  c.DistanceWeight,
		MaxCurvature:    c.MaxCurvature,
	}
}
