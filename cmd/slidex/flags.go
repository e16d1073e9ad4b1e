package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slidex/internal/carousel"
	"slidex/internal/config"
)

// applyFlags overrides cfg with every flag set on the command line. Flags
// left at their defaults keep the file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	cc := &cfg.Carousel

	if f.Changed("item") {
		cc.Item, _ = f.GetInt("item")
	}
	if f.Changed("speed") {
		cc.Speed, _ = f.GetInt("speed")
	}
	if f.Changed("loop") {
		cc.Loop, _ = f.GetBool("loop")
	}
	if f.Changed("navigation") {
		cc.Navigation, _ = f.GetBool("navigation")
	}
	if f.Changed("control") {
		cc.Control, _ = f.GetBool("control")
	}
	if f.Changed("control-text") {
		text, _ := f.GetStringSlice("control-text")
		if len(text) != 2 {
			return fmt.Errorf("--control-text needs two values, got %d", len(text))
		}
		cc.ControlText = text
	}
	if f.Changed("prev-keys") {
		cc.PrevKeys, _ = f.GetStringSlice("prev-keys")
	}
	if f.Changed("next-keys") {
		cc.NextKeys, _ = f.GetStringSlice("next-keys")
	}
	if f.Changed("slide-by") {
		raw, _ := f.GetString("slide-by")
		slideBy, err := carousel.ParseSlideBy(raw)
		if err != nil {
			return fmt.Errorf("--slide-by: %w", err)
		}
		if slideBy.IsPage() {
			cc.SlideBy = carousel.SlideByPage
		} else {
			cc.SlideBy = int64(slideBy.Resolve(1))
		}
	}
	if f.Changed("autoplay") {
		cc.Autoplay, _ = f.GetBool("autoplay")
	}
	if f.Changed("autoplay-timeout") {
		cc.AutoplayTimeout, _ = f.GetInt("autoplay-timeout")
	}
	if f.Changed("autoplay-hover-pause") {
		cc.AutoplayHoverPause, _ = f.GetBool("autoplay-hover-pause")
	}

	if f.Changed("theme") {
		cfg.UI.Theme, _ = f.GetString("theme")
	}
	if noAlt, _ := f.GetBool("no-alt-screen"); noAlt {
		cfg.UI.AltScreen = false
	}
	if noMouse, _ := f.GetBool("no-mouse"); noMouse {
		cfg.UI.Mouse = false
	}
	return nil
}
