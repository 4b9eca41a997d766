package main

import (
	"os"

	"github.com/riteshp0/DinoKicks/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
