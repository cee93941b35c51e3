// SPDX-License-Identifier: EPL-2.0

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/audmix/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "audmix",
	Short: "A real-time audio mixer for decoded sound files",
	Long: `Audmix mixes WAV, Ogg Vorbis, MP3 and AIFF files through a real-time
mixing engine with per-voice volume, pan and looping.

The play command mixes files to the default output device, run drives the
engine from a Lua script, and bounce renders a mix to a WAV file without
touching a sound card.`,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./audmix.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().Float32P("volume", "V", 0.5, "playback volume [0,1]")

	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("playback.volume", rootCmd.PersistentFlags().Lookup("volume"))
}

func initConfig() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("playback.volume", 0.5)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("audmix")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.audmix")
	}

	viper.SetEnvPrefix("AUDMIX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	logger.Setup(viper.GetString("logging.level"), viper.GetString("logging.format"))
}
