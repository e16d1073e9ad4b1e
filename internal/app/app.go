package app

import (
	"errors"

	"github.com/charmbracelet/log"

	"slidex/internal/carousel"
	"slidex/internal/deck"
	"slidex/internal/eventbus"
)

// Create resolves target into a carousel engine. When the container cannot
// be resolved it logs a diagnostic and returns nil; the caller treats a nil
// engine as inert.
func Create(target string, opts carousel.Options, logger *log.Logger, bus eventbus.EventBus) *carousel.Engine {
	if logger == nil {
		logger = log.Default()
	}

	d, err := deck.Open(target)
	if err != nil {
		if errors.Is(err, deck.ErrContainerNotFound) {
			logger.Error("slidex: not found " + target)
		} else {
			logger.Error("slidex: cannot open container", "target", target, "err", err)
		}
		publishError(bus, "cannot open "+target, err)
		return nil
	}

	engine, err := carousel.New(d.Slides, opts)
	if err != nil {
		logger.Error("slidex: container has no slides", "target", target, "err", err)
		publishError(bus, "no slides in "+target, err)
		return nil
	}

	logger.Info("deck loaded", "source", d.Source, "slides", len(d.Slides), "item", engine.Options().Item, "loop", engine.Options().Loop)
	if bus != nil {
		bus.Publish(eventbus.DeckLoadedEvent{Source: d.Source, Count: len(d.Slides)})
	}
	return engine
}

func publishError(bus eventbus.EventBus, msg string, err error) {
	if bus == nil {
		return
	}
	bus.Publish(eventbus.ErrorEvent{Message: msg, Err: err})
}
