package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	if len(os.Args) > 1 {
		os.Exit(2) // want "using exit in main"
	}
	os.Exit(1) // want "using exit in main"
}
