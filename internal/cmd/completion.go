package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(vagas completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ vagas completion bash > /etc/bash_completion.d/vagas
  # macOS:
  $ vagas completion bash > $(brew --prefix)/etc/bash_completion.d/vagas

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ vagas completion zsh > "${fpath[1]}/_vagas"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ vagas completion fish | source

  # To load completions for each session, execute once:
  $ vagas completion fish > ~/.config/fish/completions/vagas.fish

PowerShell:
  PS> vagas completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> vagas completion powershell > vagas.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
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
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
