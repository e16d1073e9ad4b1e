package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidex/internal/carousel"
	"slidex/internal/eventbus"
)

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.NewWithOptions(&buf, log.Options{}), &buf
}

func TestCreateMissingContainerIsInert(t *testing.T) {
	logger, buf := bufferLogger()
	target := filepath.Join(t.TempDir(), "nope.md")

	engine := Create(target, carousel.DefaultOptions(), logger, nil)

	assert.Nil(t, engine)
	assert.Contains(t, buf.String(), "slidex: not found "+target)
}

func TestCreateEmptyContainerIsInert(t *testing.T) {
	logger, buf := bufferLogger()

	engine := Create(t.TempDir(), carousel.DefaultOptions(), logger, nil)

	assert.Nil(t, engine)
	assert.Contains(t, buf.String(), "no slides")
}

func TestCreateBuildsEngine(t *testing.T) {
	logger, _ := bufferLogger()
	path := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, os.WriteFile(path, []byte("one\n---\ntwo\n---\nthree\n"), 0o644))

	bus := eventbus.New()
	loaded := make(chan eventbus.DeckLoadedEvent, 1)
	bus.Subscribe(eventbus.EventDeckLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.DeckLoadedEvent)
	})

	opts := carousel.DefaultOptions()
	opts.Loop = true
	engine := Create(path, opts, logger, bus)
	bus.Close()

	require.NotNil(t, engine)
	assert.Equal(t, 3, engine.RealCount())
	assert.Equal(t, 5, engine.Len())
	assert.Equal(t, 1, engine.Current())

	require.Len(t, loaded, 1)
	assert.Equal(t, 3, (<-loaded).Count)
}
