// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

const (
	// DefaultWindow is the length of the sliding window in bp
	DefaultWindow = 20

	// DefaultStep is the number of bp the window advances between samples
	DefaultStep = 5

	// DefaultOutput is the plot's file name if none is given
	DefaultOutput = "gc_plot.png"
)

// PlotConfig is the settings for rendering a GC profile.
type PlotConfig struct {
	// width of the figure in inches
	Width float64 `mapstructure:"width"`

	// height of the figure in inches
	Height float64 `mapstructure:"height"`

	// Title is a format string, filled with the window and step lengths
	Title string `mapstructure:"title"`

	// XLabel is the label on the position axis
	XLabel string `mapstructure:"x-label"`

	// YLabel is the label on the GC content axis
	YLabel string `mapstructure:"y-label"`

	// Color is the name of the line's color, eg "blue" or "darkgreen"
	Color string `mapstructure:"color"`

	// LineWidth is the width of the line in points
	LineWidth float64 `mapstructure:"line-width"`

	// Grid is whether to draw a dashed grid behind the line
	Grid bool `mapstructure:"grid"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// Window is the sliding window length in bp
	Window int `mapstructure:"window"`

	// Step is the bp between the starts of neighboring windows
	Step int `mapstructure:"step"`

	// Verbose is whether to print each window's GC content
	Verbose bool `mapstructure:"verbose"`

	// Plot settings
	Plot PlotConfig `mapstructure:"plot"`
}

func init() {
	SetDefaults(viper.GetViper())
}

// SetDefaults sets the default settings on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window", DefaultWindow)
	v.SetDefault("step", DefaultStep)
	v.SetDefault("verbose", false)

	v.SetDefault("plot.width", 10.0)
	v.SetDefault("plot.height", 5.0)
	v.SetDefault("plot.title", "GC Content (Window: %d, Step: %d)")
	v.SetDefault("plot.x-label", "Genome Position (bp)")
	v.SetDefault("plot.y-label", "GC Content (%)")
	v.SetDefault("plot.color", "blue")
	v.SetDefault("plot.line-width", 1.0)
	v.SetDefault("plot.grid", true)
}

// New returns a new Config struct populated by
// Viper settings (either from a settings file)
// and/or command line arguments
func New() *Config {
	c, err := Load(viper.GetViper())
	if err != nil {
		stderr.Fatal(err)
	}

	return c
}

// Load reads a settings file, if one was set with the "settings" key, and
// decodes the viper instance's settings into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	return c, nil
}
