package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Warchant/interbtc-clients/version"
)

// CommandVersion prints version of the binary
func CommandVersion() *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "version",
		Short:   "Prints version of this binary.",
		Aliases: []string{"v"},
		Example: "relayer version",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v := version.Version()
			commit, ts := version.CommitInfo()
			if v == "" {
				v = "main"
			}

			var sb strings.Builder
			_, _ = sb.WriteString("Version:       " + v)
			_, _ = sb.WriteString("\n")
			_, _ = sb.WriteString("Git Commit:    " + commit)
			_, _ = sb.WriteString("\n")
			_, _ = sb.WriteString("Git Timestamp: " + ts)
			_, _ = sb.WriteString("\n")

			cmd.Print(sb.String())
		},
	}

	return cmd
}
