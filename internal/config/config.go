package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/logging"
	"github.com/Akashdeep-Patra/listkit/internal/selection"
)

// ErrInvalidOption is wrapped by every Validate failure.
var ErrInvalidOption = errors.New("invalid option")

// Config holds the resolved application configuration.
type Config struct {
	// File is the collection source shown by the demo.
	File string `mapstructure:"file"`
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// ConfirmSave prompts before writing the reordered collection back.
	ConfirmSave bool `mapstructure:"confirm_save"`
	// Watch reloads the collection when the source file changes.
	Watch bool `mapstructure:"watch"`
	// CacheTTL bounds how long a loaded source document is reused.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	Log  LogOptions  `mapstructure:"log"`
	List ListOptions `mapstructure:"list"`
}

// LogOptions selects where diagnostics go while the TUI owns the terminal.
type LogOptions struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// ListOptions configures every list the demo builds.
type ListOptions struct {
	SelectionStrategy   string        `mapstructure:"selection_strategy"`
	AllowDragDrop       string        `mapstructure:"allow_drag_drop"`
	Orientation         string        `mapstructure:"orientation"`
	DisplayedItemCount  int           `mapstructure:"displayed_item_count"`
	ItemHeight          int           `mapstructure:"item_height"`
	ItemWidth           int           `mapstructure:"item_width"`
	ItemGapSize         int           `mapstructure:"item_gap_size"`
	TabToSelect         bool          `mapstructure:"tab_to_select"`
	DisableTypeToSelect bool          `mapstructure:"disable_type_to_select"`
	RestoreLastFocus    bool          `mapstructure:"restore_last_focus"`
	RenderBuffer        int           `mapstructure:"render_buffer"`
	DragThreshold       int           `mapstructure:"drag_threshold"`
	HoldTimeout         time.Duration `mapstructure:"hold_timeout"`
	ScrollInterval      time.Duration `mapstructure:"scroll_interval"`
	ScrollStep          int           `mapstructure:"scroll_step"`
	SettleDuration      time.Duration `mapstructure:"settle_duration"`
	SpacerFrames        int           `mapstructure:"spacer_frames"`
}

// Strategy parses SelectionStrategy.
func (o ListOptions) Strategy() (selection.Strategy, error) {
	return selection.ParseStrategy(o.SelectionStrategy)
}

// DragMode parses AllowDragDrop.
func (o ListOptions) DragMode() (dragdrop.Mode, error) {
	return dragdrop.ParseMode(o.AllowDragDrop)
}

// Axis parses Orientation.
func (o ListOptions) Axis() (dragdrop.Orientation, error) {
	return dragdrop.ParseOrientation(o.Orientation)
}

// ItemSize is the extent of one row along the list axis.
func (o ListOptions) ItemSize() int {
	if axis, _ := o.Axis(); axis == dragdrop.Horizontal {
		return o.ItemWidth
	}
	return o.ItemHeight
}

// SelectionOptions converts the list options into engine options.
func (o ListOptions) SelectionOptions() (selection.Options, error) {
	strategy, err := o.Strategy()
	if err != nil {
		return selection.Options{}, err
	}
	return selection.Options{
		Strategy:            strategy,
		TabToSelect:         o.TabToSelect,
		DisableTypeToSelect: o.DisableTypeToSelect,
		RestoreLastFocus:    o.RestoreLastFocus,
	}, nil
}

// DragOptions converts the list options into orchestrator options.
func (o ListOptions) DragOptions() (dragdrop.Options, error) {
	mode, err := o.DragMode()
	if err != nil {
		return dragdrop.Options{}, err
	}
	axis, err := o.Axis()
	if err != nil {
		return dragdrop.Options{}, err
	}
	return dragdrop.Options{
		Mode:           mode,
		Orientation:    axis,
		DragThreshold:  o.DragThreshold,
		HoldTimeout:    o.HoldTimeout,
		ScrollInterval: o.ScrollInterval,
		ScrollStep:     o.ScrollStep,
		SettleDuration: o.SettleDuration,
		SpacerFrames:   o.SpacerFrames,
	}, nil
}

// Validate checks option values that viper cannot type-check.
func (c *Config) Validate() error {
	o := c.List
	if _, err := o.Strategy(); err != nil {
		return fmt.Errorf("%w: list.selection_strategy: %w", ErrInvalidOption, err)
	}
	if _, err := o.DragMode(); err != nil {
		return fmt.Errorf("%w: list.allow_drag_drop: %w", ErrInvalidOption, err)
	}
	if _, err := o.Axis(); err != nil {
		return fmt.Errorf("%w: list.orientation: %w", ErrInvalidOption, err)
	}

	positive := []struct {
		key string
		val int
	}{
		{"list.displayed_item_count", o.DisplayedItemCount},
		{"list.item_height", o.ItemHeight},
		{"list.item_width", o.ItemWidth},
		{"list.scroll_step", o.ScrollStep},
		{"list.spacer_frames", o.SpacerFrames},
	}
	for _, p := range positive {
		if p.val < 1 {
			return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidOption, p.key, p.val)
		}
	}
	if o.ItemGapSize < 0 || o.RenderBuffer < 0 || o.DragThreshold < 0 {
		return fmt.Errorf("%w: list gap, render buffer and drag threshold must not be negative", ErrInvalidOption)
	}
	for key, d := range map[string]time.Duration{
		"list.hold_timeout":    o.HoldTimeout,
		"list.scroll_interval": o.ScrollInterval,
		"list.settle_duration": o.SettleDuration,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidOption, key, d)
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidOption, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %w", ErrInvalidOption, err)
	}
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("%w: theme %q", ErrInvalidOption, c.Theme)
	}
	return nil
}

// Logging converts the log options into a logging config.
func (c *Config) Logging() *logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level, _ = logging.ParseLevel(c.Log.Level)
	cfg.Format, _ = logging.ParseFormat(c.Log.Format)
	if c.Log.File != "" {
		cfg.Output = c.Log.File
	}
	return cfg
}

// New returns a viper instance with defaults, env binding and the config
// search path set up. Callers may bind flags to it before calling Load.
func New(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDirectory())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("LISTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from ~/.config/listkit/config.yaml (or TOML/JSON),
// or from path when it is set.
func Load(path string) (*Config, error) {
	return LoadFrom(New(path))
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		// A missing config file means defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("file", "")
	v.SetDefault("theme", "dark")
	v.SetDefault("confirm_save", true)
	v.SetDefault("watch", true)
	v.SetDefault("cache_ttl", 2*time.Second)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("list.selection_strategy", "default")
	v.SetDefault("list.allow_drag_drop", "natural-movement")
	v.SetDefault("list.orientation", "vertical")
	v.SetDefault("list.displayed_item_count", 10)
	v.SetDefault("list.item_height", 1)
	v.SetDefault("list.item_width", 12)
	v.SetDefault("list.item_gap_size", 0)
	v.SetDefault("list.tab_to_select", false)
	v.SetDefault("list.disable_type_to_select", false)
	v.SetDefault("list.restore_last_focus", false)
	v.SetDefault("list.render_buffer", 5)
	v.SetDefault("list.drag_threshold", dragdrop.DefaultDragThreshold)
	v.SetDefault("list.hold_timeout", dragdrop.DefaultHoldTimeout)
	v.SetDefault("list.scroll_interval", dragdrop.DefaultScrollInterval)
	v.SetDefault("list.scroll_step", 1)
	v.SetDefault("list.settle_duration", dragdrop.DefaultSettleDuration)
	v.SetDefault("list.spacer_frames", dragdrop.DefaultSpacerFrames)
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "listkit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "listkit")
}
