// Package config holds the radar's tunable parameters, loadable from a
// findable.toml file with sane defaults for everything.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config collects every knob the hosting UI supplies to the positioning
// subsystem plus the demo/display settings around it. All values are
// configuration, not structure: changing them must never change the
// placement algorithm.
type Config struct {
	// Display geometry.
	MaxRadiusPx  float64 `toml:"max_radius_px"`  // display radius the max range maps onto
	MaxRangeFeet float64 `toml:"max_range_feet"` // real-world range shown on the radar
	GridStepFeet float64 `toml:"grid_step_feet"` // placement snap, in real-world units

	// View bounds.
	MinScale float64 `toml:"min_scale"`
	MaxScale float64 `toml:"max_scale"`

	// Decorative sweep.
	SweepRPM float64 `toml:"sweep_rpm"`

	// Frame pacing.
	TargetFPS float64 `toml:"target_fps"`

	// Scan source.
	DemoDevices  int      `toml:"demo_devices"`   // 0 = random population
	PollInterval Duration `toml:"poll_interval"`  // scanner cadence
	DeviceTTL    Duration `toml:"device_timeout"` // drop devices unseen this long
}

// Duration is a time.Duration that unmarshals from TOML strings like
// "500ms" or "30s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the configuration of the observed prototype.
func Default() Config {
	return Config{
		MaxRadiusPx:  200,
		MaxRangeFeet: 35,
		GridStepFeet: 1,
		MinScale:     0.5,
		MaxScale:     3.0,
		SweepRPM:     30,
		TargetFPS:    30,
		DemoDevices:  0,
		PollInterval: Duration(500 * time.Millisecond),
		DeviceTTL:    Duration(30 * time.Second),
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error; the defaults simply apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the radar cannot run with.
func (c Config) Validate() error {
	switch {
	case c.MaxRadiusPx <= 0:
		return fmt.Errorf("max_radius_px must be positive, got %v", c.MaxRadiusPx)
	case c.MaxRangeFeet <= 0:
		return fmt.Errorf("max_range_feet must be positive, got %v", c.MaxRangeFeet)
	case c.GridStepFeet < 0:
		return fmt.Errorf("grid_step_feet must not be negative, got %v", c.GridStepFeet)
	case c.MinScale <= 0 || c.MaxScale < c.MinScale:
		return fmt.Errorf("scale bounds [%v, %v] invalid", c.MinScale, c.MaxScale)
	case c.TargetFPS <= 0:
		return fmt.Errorf("target_fps must be positive, got %v", c.TargetFPS)
	case c.PollInterval <= 0:
		return fmt.Errorf("poll_interval must be positive, got %v", c.PollInterval)
	}
	return nil
}

// GridStepPx converts the configured grid step to pixels for the placer.
func (c Config) GridStepPx() float64 {
	return c.GridStepFeet * (c.MaxRadiusPx / c.MaxRangeFeet)
}
