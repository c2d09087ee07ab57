package main

import (
	"os"

	"github.com/karasz/zigfwd/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
