package main

import (
	"os"

	"MiniCheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
