package main

import (
	"os"

	"github.com/heathj/nodeset/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
