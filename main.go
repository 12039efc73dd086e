package main

import (
	"os"

	"github.com/thenoetrevino/daykan/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
