package main

import (
	"os"

	"github.com/atomicstack/treepick/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
