// Package config loads the overlay's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"magnify/internal/view"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Audio   AudioConfig   `yaml:"audio"`
	Panel   PanelConfig   `yaml:"panel"`
}

type WindowConfig struct {
	Title      string        `yaml:"title"`
	Decorated  bool          `yaml:"decorated"`
	Floating   bool          `yaml:"floating"`
	Interval   time.Duration `yaml:"interval"`     // tick trigger period
	MaxCatchUp int           `yaml:"max_catch_up"` // ticks run back to back after a stall
}

// PhysicsConfig mirrors view.Tuning.
type PhysicsConfig struct {
	TickRate           float64 `yaml:"tick_rate"` // integration rate, decoupled from Interval
	WheelScale         float64 `yaml:"wheel_scale"`
	WheelDeltaPerNotch float64 `yaml:"wheel_delta_per_notch"`
	ZoomImpulse        float64 `yaml:"zoom_impulse"`
	ScaleFriction      float64 `yaml:"scale_friction"`
	ScaleDeadZone      float64 `yaml:"scale_dead_zone"`
	MinScale           float64 `yaml:"min_scale"`
	DefaultScale       float64 `yaml:"default_scale"`
	DragFriction       float64 `yaml:"drag_friction"`
	VelocityThreshold  float64 `yaml:"velocity_threshold"`
	RadiusImpulse      float64 `yaml:"radius_impulse"`
	RadiusDeceleration float64 `yaml:"radius_deceleration"`
	RadiusDeadZone     float64 `yaml:"radius_dead_zone"`
	DefaultRadius      float64 `yaml:"default_radius"`
	EaseRate           float64 `yaml:"ease_rate"`
	ShadowMax          float64 `yaml:"shadow_max"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

type PanelConfig struct {
	Visible     bool    `yaml:"visible"`   // shown at start-up
	FontSize    float64 `yaml:"font_size"` // points at 72 DPI
	FadeSeconds float64 `yaml:"fade_seconds"`
	Margin      int     `yaml:"margin"` // pixels from the top-left corner
}

// Default returns the built-in configuration.
func Default() Config {
	t := view.DefaultTuning()
	return Config{
		Window: WindowConfig{
			Title:      "magnify",
			Decorated:  false,
			Floating:   true,
			Interval:   16 * time.Millisecond,
			MaxCatchUp: 4,
		},
		Physics: PhysicsConfig{
			TickRate:           t.TickRate,
			WheelScale:         t.WheelScale,
			WheelDeltaPerNotch: t.WheelDeltaPerNotch,
			ZoomImpulse:        t.ZoomImpulse,
			ScaleFriction:      t.ScaleFriction,
			ScaleDeadZone:      t.ScaleDeadZone,
			MinScale:           t.MinScale,
			DefaultScale:       t.DefaultScale,
			DragFriction:       t.DragFriction,
			VelocityThreshold:  t.VelocityThreshold,
			RadiusImpulse:      t.RadiusImpulse,
			RadiusDeceleration: t.RadiusDeceleration,
			RadiusDeadZone:     t.RadiusDeadZone,
			DefaultRadius:      t.DefaultRadius,
			EaseRate:           t.EaseRate,
			ShadowMax:          t.ShadowMax,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.25,
		},
		Panel: PanelConfig{
			FontSize:    14,
			FadeSeconds: 0.15,
			Margin:      10,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the physics cannot integrate stably.
func (c Config) Validate() error {
	p := c.Physics
	positive := []struct {
		name string
		v    float64
	}{
		{"physics.tick_rate", p.TickRate},
		{"physics.wheel_delta_per_notch", p.WheelDeltaPerNotch},
		{"physics.min_scale", p.MinScale},
		{"physics.default_scale", p.DefaultScale},
		{"physics.shadow_max", p.ShadowMax},
		{"physics.ease_rate", p.EaseRate},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalid, f.name, f.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"physics.wheel_scale", p.WheelScale},
		{"physics.zoom_impulse", p.ZoomImpulse},
		{"physics.scale_dead_zone", p.ScaleDeadZone},
		{"physics.velocity_threshold", p.VelocityThreshold},
		{"physics.radius_impulse", p.RadiusImpulse},
		{"physics.radius_dead_zone", p.RadiusDeadZone},
		{"physics.default_radius", p.DefaultRadius},
	}
	for _, f := range nonNegative {
		if !(f.v >= 0) {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalid, f.name, f.v)
		}
	}

	// Each friction removes v*dt*friction per step; at or above 1 the
	// decay overshoots and oscillates.
	dt := 1 / p.TickRate
	frictions := []struct {
		name string
		v    float64
	}{
		{"physics.scale_friction", p.ScaleFriction},
		{"physics.drag_friction", p.DragFriction},
		{"physics.radius_deceleration", p.RadiusDeceleration},
	}
	for _, f := range frictions {
		if !(f.v >= 0) || f.v*dt >= 1 {
			return fmt.Errorf("%w: %s must be in [0, tick_rate), got %v", ErrInvalid, f.name, f.v)
		}
	}

	if p.DefaultScale < p.MinScale {
		return fmt.Errorf("%w: physics.default_scale %v below min_scale %v", ErrInvalid, p.DefaultScale, p.MinScale)
	}
	if p.ShadowMax > 1 {
		return fmt.Errorf("%w: physics.shadow_max must be <= 1, got %v", ErrInvalid, p.ShadowMax)
	}
	if c.Window.Interval <= 0 {
		return fmt.Errorf("%w: window.interval must be > 0, got %v", ErrInvalid, c.Window.Interval)
	}
	if c.Window.MaxCatchUp < 1 {
		return fmt.Errorf("%w: window.max_catch_up must be >= 1, got %d", ErrInvalid, c.Window.MaxCatchUp)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	if c.Panel.FontSize <= 0 {
		return fmt.Errorf("%w: panel.font_size must be > 0, got %v", ErrInvalid, c.Panel.FontSize)
	}
	if c.Panel.FadeSeconds < 0 {
		return fmt.Errorf("%w: panel.fade_seconds must be >= 0, got %v", ErrInvalid, c.Panel.FadeSeconds)
	}
	return nil
}

// Tuning converts the physics section for the engine.
func (c Config) Tuning() view.Tuning {
	p := c.Physics
	return view.Tuning{
		TickRate:           p.TickRate,
		WheelScale:         p.WheelScale,
		WheelDeltaPerNotch: p.WheelDeltaPerNotch,
		ZoomImpulse:        p.ZoomImpulse,
		ScaleFriction:      p.ScaleFriction,
		ScaleDeadZone:      p.ScaleDeadZone,
		MinScale:           p.MinScale,
		DefaultScale:       p.DefaultScale,
		DragFriction:       p.DragFriction,
		VelocityThreshold:  p.VelocityThreshold,
		RadiusImpulse:      p.RadiusImpulse,
		RadiusDeceleration: p.RadiusDeceleration,
		RadiusDeadZone:     p.RadiusDeadZone,
		DefaultRadius:      p.DefaultRadius,
		EaseRate:           p.EaseRate,
		ShadowMax:          p.ShadowMax,
	}
}
