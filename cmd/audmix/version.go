// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the audmix version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("audmix", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
