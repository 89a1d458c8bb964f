package cmd

import (
	"fmt"
	"os"

	protax "github.com/gnames/protax/pkg"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", protax.Version, protax.Build)
		os.Exit(0)
	}
}
