// Package config loads run definitions from YAML or JSON files and turns
// them into validated shafts for the capacity engine.
package config

import (
	"fmt"

	"github.com/OpenSourcePT/PMCurve/internal/aashto"
	"github.com/OpenSourcePT/PMCurve/internal/section"
	"github.com/spf13/viper"
)

// Run holds everything one curve generation needs: report metadata, the
// shaft definition, and optional output paths.
type Run struct {
	Project  string      `mapstructure:"project"`
	Designer string      `mapstructure:"designer"`
	Shaft    ShaftInput  `mapstructure:"shaft"`
	Output   OutputPaths `mapstructure:"output"`
}

// ShaftInput mirrors the engine's input boundary in file-friendly form.
type ShaftInput struct {
	Diameter float64 `mapstructure:"diameter"` // in
	Cover    float64 `mapstructure:"cover"`    // in
	Bars     int     `mapstructure:"bars"`
	BarSize  int     `mapstructure:"bar_size"` // ASTM designation, 3..11
	Fc       float64 `mapstructure:"fc"`       // ksi
	Fy       float64 `mapstructure:"fy"`       // ksi
	Ties     string  `mapstructure:"ties"`     // "spirals" or "hoops"
}

// OutputPaths lists optional artifacts to write after generation. Empty
// fields disable the corresponding export.
type OutputPaths struct {
	PDF    string `mapstructure:"pdf"`    // report file
	Curve  string `mapstructure:"curve"`  // interaction diagram (png/svg/pdf)
	Layout string `mapstructure:"layout"` // rebar layout diagram
}

// LoadRun reads a run file; the format is inferred from the extension.
func LoadRun(path string) (*Run, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read run file %s: %w", path, err)
	}

	var run Run
	if err := v.Unmarshal(&run); err != nil {
		return nil, fmt.Errorf("parse run file %s: %w", path, err)
	}
	return &run, nil
}

// Build constructs the validated shaft the run describes.
func (r *Run) Build() (*section.Shaft, error) {
	ties, err := aashto.ParseTieType(r.Shaft.Ties)
	if err != nil {
		return nil, err
	}
	return section.New(r.Shaft.Diameter, r.Shaft.Cover, r.Shaft.Bars,
		r.Shaft.BarSize, r.Shaft.Fc, r.Shaft.Fy, ties)
}
