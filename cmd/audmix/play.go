// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/audmix"
)

var playCmd = &cobra.Command{
	Use:   "play FILE...",
	Short: "Mix the given sound files to the default output device",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Bool("loop", false, "loop every file until interrupted")
	playCmd.Flags().Float32("pan", 0, "stereo position [-1,+1]")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	player, err := audmix.New()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer player.Close()

	loop, _ := cmd.Flags().GetBool("loop")
	pan, _ := cmd.Flags().GetFloat32("pan")
	volume := viper.GetFloat64("playback.volume")

	for _, path := range args {
		name := soundName(path)
		if err := player.Load(name, path); err != nil {
			return fmt.Errorf("%w", err)
		}
		ch := player.PlayVolumePan(name, float32(volume), pan)
		player.SetLoop(ch, loop)
		slog.Info("playing", "name", name, "path", path)
	}

	// 60 Hz control ticks until every voice ran out.
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for range ticker.C {
		player.Update()
		if player.ActiveVoices() == 0 {
			break
		}
	}
	return nil
}

func soundName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
