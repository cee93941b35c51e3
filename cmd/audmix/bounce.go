// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/engine"
)

var bounceCmd = &cobra.Command{
	Use:   "bounce FILE...",
	Short: "Render a mix of the given files to a WAV file, offline",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBounce,
}

func init() {
	bounceCmd.Flags().StringP("out", "o", "bounce.wav", "output WAV path")
	bounceCmd.Flags().Duration("duration", 0, "length to render (default: longest input)")
	rootCmd.AddCommand(bounceCmd)
}

func runBounce(cmd *cobra.Command, args []string) error {
	player, err := audmix.New(audmix.WithDevice(device.NullOpener))
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer player.Close()

	volume := viper.GetFloat64("playback.volume")
	frames := 0
	for _, path := range args {
		name := soundName(path)
		if err := player.Load(name, path); err != nil {
			return fmt.Errorf("%w", err)
		}
		player.PlayVolume(name, float32(volume))
		if n := player.SampleFrames(name); n > frames {
			frames = n
		}
	}

	if d, _ := cmd.Flags().GetDuration("duration"); d > 0 {
		frames = int(d * engine.SampleRate / time.Second)
	}

	outPath, _ := cmd.Flags().GetString("out")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	if err := player.RenderWAV(out, frames); err != nil {
		return fmt.Errorf("%w", err)
	}
	slog.Info("bounced", "out", outPath, "frames", frames)
	return nil
}
