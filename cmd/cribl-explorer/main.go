// Command cribl-explorer provides a read-only overview of a Cribl Cloud
// environment: worker groups, workers, sources, destinations, pipelines,
// and routes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PySecNinja/cribl-cloud-explorer/internal/clierr"
)

var (
	// BuildTag is set during build
	BuildTag = "dev"
	// BuildDate is set during build
	BuildDate = "unknown"
)

var (
	flagBaseURL string
	flagToken   string
)

var rootCmd = &cobra.Command{
	Use:   "cribl-explorer",
	Short: "Explore a Cribl Cloud environment",
	Long: `cribl-explorer - explore a Cribl Cloud environment

cribl-explorer queries the Cribl API and summarizes what is deployed,
so a new engineer can understand the environment without clicking
through the UI. Every operation is read-only.

It provides commands for:

  - Listing worker groups (fleets) and the workers in each
  - Per-group detail: sources, destinations, pipelines, routes
  - An ASCII data-flow diagram per group
  - A whole-environment architecture summary
  - Dumping the normalized topology as JSON
  - An interactive browser over all of the above

Credentials come from flags, the environment, or ~/.cribl-explorer/config.yaml;
anything still missing is prompted for (token input is hidden).

Environment Variables:
  CRIBL_BASE_URL          Instance base URL (e.g. https://main-acme.cribl.cloud)
  CRIBL_TOKEN             Bearer token (Settings > Global > API Reference)
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, clierr.Pretty(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "url", "", "Cribl Cloud base URL")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Bearer token (prefer CRIBL_TOKEN)")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cribl-explorer version %s (built %s)\n", BuildTag, BuildDate)
		},
	})

	// Add completion command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for cribl-explorer.

Bash:
  $ source <(cribl-explorer completion bash)

Zsh:
  $ cribl-explorer completion zsh > "${fpath[1]}/_cribl-explorer"

Fish:
  $ cribl-explorer completion fish | source

PowerShell:
  PS> cribl-explorer completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	})
}
