package app

import (
	"github.com/spf13/cobra"

	"github.com/xab-mack/solscan/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "solscan", Short: "Static analyzer for Solidity smart contracts"}
	cli.AddCommands(root)
	return root
}
