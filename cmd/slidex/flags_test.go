package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidex/internal/carousel"
	"slidex/internal/config"
)

func parsed(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "slidex"}
	registerFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cmd := parsed(t,
		"--item", "3",
		"--speed", "150",
		"--loop",
		"--navigation=false",
		"--control-text", "«,»",
		"--next-keys", "n,space",
		"--slide-by", "page",
		"--autoplay",
		"--autoplay-timeout", "5000",
		"--theme", "dark",
		"--no-alt-screen",
	)
	require.NoError(t, applyFlags(cmd, cfg))

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Item)
	assert.Equal(t, int64(150), opts.Speed.Milliseconds())
	assert.True(t, opts.Loop)
	assert.False(t, opts.Navigation)
	assert.Equal(t, [2]string{"«", "»"}, opts.ControlText)
	assert.Equal(t, []string{"n", "space"}, opts.NextKeys)
	assert.Equal(t, carousel.Page(), opts.SlideBy)
	assert.True(t, opts.Autoplay)
	assert.Equal(t, int64(5000), opts.AutoplayTimeout.Milliseconds())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.False(t, cfg.UI.AltScreen)
	assert.True(t, cfg.UI.Mouse)
}

func TestUnsetFlagsKeepConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Carousel.Item = 4
	cfg.Carousel.Loop = true

	require.NoError(t, applyFlags(parsed(t), cfg))
	assert.Equal(t, 4, cfg.Carousel.Item)
	assert.True(t, cfg.Carousel.Loop)
}

func TestNumericSlideBy(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, applyFlags(parsed(t, "--slide-by", "2"), cfg))
	assert.Equal(t, int64(2), cfg.Carousel.SlideBy)
}

func TestBadFlagValues(t *testing.T) {
	assert.Error(t, applyFlags(parsed(t, "--slide-by", "lots"), config.DefaultConfig()))
	assert.Error(t, applyFlags(parsed(t, "--control-text", "only-one"), config.DefaultConfig()))
}
