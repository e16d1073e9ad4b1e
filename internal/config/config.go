package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"slidex/internal/carousel"
	"slidex/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Carousel CarouselConfig `toml:"carousel"`
	UI       UISettings     `toml:"ui"`
}

// CarouselConfig mirrors carousel.Options in file form. Durations are milliseconds.
type CarouselConfig struct {
	Item               int      `toml:"item"`
	Speed              int      `toml:"speed"`
	Loop               bool     `toml:"loop"`
	Navigation         bool     `toml:"navigation"`
	Control            bool     `toml:"control"`
	ControlText        []string `toml:"control_text"`
	PrevKeys           []string `toml:"prev_keys,omitempty"`
	NextKeys           []string `toml:"next_keys,omitempty"`
	SlideBy            any      `toml:"slide_by"` // integer or "page"
	Autoplay           bool     `toml:"autoplay"`
	AutoplayTimeout    int      `toml:"autoplay_timeout"`
	AutoplayHoverPause bool     `toml:"autoplay_hover_pause"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme     string `toml:"theme"` // glamour style: auto, dark, light, notty
	AltScreen bool   `toml:"alt_screen"`
	Mouse     bool   `toml:"mouse"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "slidex", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Options(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Options converts the file form into carousel options
func (c *Config) Options() (carousel.Options, error) {
	cc := c.Carousel
	slideBy, err := carousel.ParseSlideBy(cc.SlideBy)
	if err != nil {
		return carousel.Options{}, err
	}

	opts := carousel.Options{
		Item:               cc.Item,
		Speed:              time.Duration(cc.Speed) * time.Millisecond,
		Loop:               cc.Loop,
		Navigation:         cc.Navigation,
		Control:            cc.Control,
		PrevKeys:           cc.PrevKeys,
		NextKeys:           cc.NextKeys,
		SlideBy:            slideBy,
		Autoplay:           cc.Autoplay,
		AutoplayTimeout:    time.Duration(cc.AutoplayTimeout) * time.Millisecond,
		AutoplayHoverPause: cc.AutoplayHoverPause,
	}
	if len(cc.ControlText) > 0 {
		opts.ControlText[0] = cc.ControlText[0]
	}
	if len(cc.ControlText) > 1 {
		opts.ControlText[1] = cc.ControlText[1]
	}
	return opts.Normalize(), nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	def := carousel.DefaultOptions()
	return &Config{
		Version: 1,
		Carousel: CarouselConfig{
			Item:               def.Item,
			Speed:              int(def.Speed.Milliseconds()),
			Loop:               def.Loop,
			Navigation:         def.Navigation,
			Control:            def.Control,
			ControlText:        []string{def.ControlText[0], def.ControlText[1]},
			SlideBy:            int64(1),
			Autoplay:           def.Autoplay,
			AutoplayTimeout:    int(def.AutoplayTimeout.Milliseconds()),
			AutoplayHoverPause: def.AutoplayHoverPause,
		},
		UI: UISettings{
			Theme:     "auto",
			AltScreen: true,
			Mouse:     true,
		},
	}
}
