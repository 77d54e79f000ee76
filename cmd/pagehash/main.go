package main

import (
	"os"

	"github.com/tendermint/tmlibs/cli"

	"github.com/pagehash/pagehash/cmd/pagehash/commands"
)

func main() {
	cmd := cli.PrepareBaseCmd(commands.RootCmd, "PH", os.ExpandEnv("./.pagehash"))
	cmd.Execute()
}
