package main

import (
	"os"

	"pkt.systems/nslog/cmd/nslog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
