package main

import (
	"errors"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errProblemsFound) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
