package main

import (
	"os"

	"github.com/hashicorp-forge/docmodel/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
