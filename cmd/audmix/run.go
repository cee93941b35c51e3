// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	lua "github.com/yuin/gopher-lua"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/script"
)

var runCmd = &cobra.Command{
	Use:   "run SCRIPT",
	Short: "Drive the mixer from a Lua script",
	Long: `Run executes a Lua script with the audio module preloaded. The script
loads and plays sounds; once it returns, audmix keeps ticking the engine
until every voice has finished.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	player, err := audmix.New()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer player.Close()

	L := lua.NewState()
	defer L.Close()
	script.Preload(L, player)

	if err := L.DoFile(args[0]); err != nil {
		return fmt.Errorf("running %q: %w", args[0], err)
	}

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
