package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/render"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config carries every tunable for the viewer, the feed daemon and the
// exporter. Zero values fall back to defaults during Load.
type Config struct {
	Layout      LayoutConfig      `yaml:"layout"`
	Viewport    ViewportConfig    `yaml:"viewport"`
	Interaction InteractionConfig `yaml:"interaction"`
	Render      RenderConfig      `yaml:"render"`
	Feed        FeedConfig        `yaml:"feed"`
	Log         LogConfig         `yaml:"log"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// LayoutConfig tunes the force simulation.
type LayoutConfig struct {
	LinkDistance   float64 `yaml:"link_distance" validate:"gt=0"`
	LinkStrength   float64 `yaml:"link_strength" validate:"gt=0,lte=1"`
	ChargeStrength float64 `yaml:"charge_strength" validate:"gt=0"`
	CenterStrength float64 `yaml:"center_strength" validate:"gte=0,lte=1"`
	CollideMargin  float64 `yaml:"collide_margin" validate:"gte=0"`
	VelocityDecay  float64 `yaml:"velocity_decay" validate:"gte=0,lt=1"`
	Seed           int64   `yaml:"seed"`
}

// ViewportConfig bounds the zoom range and reset animation.
type ViewportConfig struct {
	MinScale      float64  `yaml:"min_scale" validate:"gt=0"`
	MaxScale      float64  `yaml:"max_scale" validate:"gt=0,gtefield=MinScale"`
	ResetDuration Duration `yaml:"reset_duration" validate:"gt=0"`
}

// InteractionConfig tunes pointer handling.
type InteractionConfig struct {
	DragThreshold float64 `yaml:"drag_threshold" validate:"gte=0"`
	ReheatAlpha   float64 `yaml:"reheat_alpha" validate:"gt=0,lte=1"`
}

// RenderConfig carries the palette and opacity tables.
type RenderConfig struct {
	Palette render.Palette `yaml:"palette"`
	Opacity render.Opacity `yaml:"opacity"`
}

// FeedConfig selects where topology snapshots come from.
//
// Source is one of "file", "s3", "stream" or "generator". Only the
// fields for the chosen source are consulted.
type FeedConfig struct {
	Source       string   `yaml:"source" validate:"oneof=file s3 stream generator"`
	Path         string   `yaml:"path"`
	PollInterval Duration `yaml:"poll_interval" validate:"gt=0"`

	Bucket   string `yaml:"bucket"`
	Key      string `yaml:"key"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`

	StreamURL string `yaml:"stream_url"`

	GeneratorNodes int   `yaml:"generator_nodes" validate:"gte=0"`
	GeneratorSeed  int64 `yaml:"generator_seed"`
}

// LogConfig routes structured logs. The TUI cannot share stderr with
// the alternate screen, so it logs to a file when Path is set.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Path  string `yaml:"path"`
}

// MetricsConfig exposes the Prometheus endpoint when Listen is set.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// Default returns the full default configuration.
func Default() Config {
	lo := layout.DefaultOptions()
	return Config{
		Layout: LayoutConfig{
			LinkDistance:   lo.LinkDistance,
			LinkStrength:   lo.LinkStrength,
			ChargeStrength: lo.ChargeStrength,
			CenterStrength: lo.CenterStrength,
			CollideMargin:  lo.CollideMargin,
			VelocityDecay:  lo.VelocityDecay,
			Seed:           lo.Seed,
		},
		Viewport: ViewportConfig{
			MinScale:      0.1,
			MaxScale:      4.0,
			ResetDuration: Duration(500 * time.Millisecond),
		},
		Interaction: InteractionConfig{
			DragThreshold: 3.0,
			ReheatAlpha:   0.3,
		},
		Render: RenderConfig{
			Palette: render.DefaultPalette(),
			Opacity: render.DefaultOpacity(),
		},
		Feed: FeedConfig{
			Source:         "generator",
			PollInterval:   Duration(2 * time.Second),
			GeneratorNodes: 24,
			GeneratorSeed:  1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file layered over the defaults. An empty
// path returns the defaults untouched.
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
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the loaded values against the struct tags plus the
// cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	switch c.Feed.Source {
	case "file":
		if c.Feed.Path == "" {
			return fmt.Errorf("Feed.Path: required when source is file")
		}
	case "s3":
		if c.Feed.Bucket == "" || c.Feed.Key == "" {
			return fmt.Errorf("Feed.Bucket, Feed.Key: required when source is s3")
		}
	case "stream":
		if c.Feed.StreamURL == "" {
			return fmt.Errorf("Feed.StreamURL: required when source is stream")
		}
	}
	return nil
}

// LayoutOptions converts the layout section to simulation options.
func (c *Config) LayoutOptions() layout.Options {
	opts := layout.DefaultOptions()
	opts.LinkDistance = c.Layout.LinkDistance
	opts.LinkStrength = c.Layout.LinkStrength
	opts.ChargeStrength = c.Layout.ChargeStrength
	opts.CenterStrength = c.Layout.CenterStrength
	opts.CollideMargin = c.Layout.CollideMargin
	opts.VelocityDecay = c.Layout.VelocityDecay
	opts.Seed = c.Layout.Seed
	return opts
}

// formatValidationError converts validator errors to a user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "lt":
			return fmt.Errorf("%s: must be less than %s", field, param)
		case "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		case "gtefield":
			return fmt.Errorf("%s: must not be below %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
