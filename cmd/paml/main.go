package main

import (
	"os"

	"github.com/msto63/paml/cmd/paml/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
