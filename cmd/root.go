package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const banner = `  ______         __
 /_  __/__ _____/ /  __ __  ___  ___
  / / / _ \/ __/ _ \/ // / / _ \/ _ \
 /_/  \_,_/\__/_//_/\_, / /\___/_//_/
                   /___/              `

var (
	version   string
	buildTime string
)

var rootCmd = &cobra.Command{
	Use:   "tachyon <string>",
	Short: "A CLI for the Tachyon 256-bit keyed/seeded/domain-separated hash",
	Long:  banner + "\n\ntachyon hashes bytes with a wide parallel AES-round permutation, CLMUL hardening, and a bitmap-stack Merkle tree over large inputs.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHash,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
	},
	DisableFlagsInUseLine: true,
}

// SetVersion records the version/build-time strings shown by `tachyon version`.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	versionCmd.SetUsageTemplate(`Usage:
  {{.CommandPath}}

Prints the version and build time information for tachyon.
`)
}

func Execute() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = false

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetUsageTemplate(`Usage:
  {{.CommandPath}} [string]

{{if .HasAvailableLocalFlags}}Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
Additional Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`)

	return rootCmd.Execute()
}
