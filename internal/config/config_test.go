package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidex/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[carousel]
item = 3
loop = true
slide_by = "page"
speed = 500
control_text = ["prev", "next"]

[ui]
theme = "dark"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.Mouse)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Item)
	assert.True(t, opts.Loop)
	assert.True(t, opts.SlideBy.IsPage())
	assert.Equal(t, 500*time.Millisecond, opts.Speed)
	assert.Equal(t, [2]string{"prev", "next"}, opts.ControlText)
	assert.True(t, opts.Navigation)
	assert.Equal(t, 3*time.Second, opts.AutoplayTimeout)
}

func TestLoadRejectsInvalidSlideBy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel]\nslide_by = \"half\"\n"), 0o644))

	_, err := NewConfigService(path).Load()
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel\nitem = "), 0o644))

	_, err := NewConfigService(path).Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Carousel.Item = 2
	cfg.Carousel.SlideBy = "page"
	cfg.Carousel.Autoplay = true
	cfg.Carousel.NextKeys = []string{"n"}
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	opts, err := loaded.Options()
	require.NoError(t, err)
	assert.Equal(t, 2, opts.Item)
	assert.True(t, opts.SlideBy.IsPage())
	assert.True(t, opts.Autoplay)
	assert.Equal(t, []string{"n"}, opts.NextKeys)
}

func TestServicePublishesEvents(t *testing.T) {
	bus := eventbus.New()
	var mu sync.Mutex
	var seen []eventbus.EventType
	record := func(e eventbus.DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, e.Type())
	}
	bus.Subscribe(eventbus.EventConfigLoaded, record)
	bus.Subscribe(eventbus.EventConfigSaved, record)

	svc := NewConfigServiceWithBus(filepath.Join(t.TempDir(), "config.toml"), bus)
	cfg, err := svc.Load()
	require.NoError(t, err)
	require.NoError(t, svc.Save(cfg))
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []eventbus.EventType{eventbus.EventConfigLoaded, eventbus.EventConfigSaved}, seen)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "slidex", filepath.Base(filepath.Dir(DefaultPath())))
	assert.Equal(t, DefaultPath(), NewConfigService("").Path())
}
