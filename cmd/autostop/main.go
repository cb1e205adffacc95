package main

import (
	"os"

	"github.com/bnema/studio-autostop/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
