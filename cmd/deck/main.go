package main

import (
	"os"

	"github.com/grovetools/deck/cli"
	"github.com/grovetools/deck/cmd"
)

func main() {
	if err := cli.Execute(cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
