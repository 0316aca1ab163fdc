package main

import "os"

func main() {
	defer func() {
		os.Exit(0) // want "using exit in main"
	}()
	exit(run())
}

func run() int {
	return 0
}

func exit(code int) {
	os.Exit(code)
}
