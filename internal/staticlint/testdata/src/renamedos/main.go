package main

import (
	system "os"
)

type os struct{}

func (os) Exit(int) {}

func main() {
	var o os
	o.Exit(0)
	system.Exit(1) // want "using exit in main"
}
