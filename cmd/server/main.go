package main

import (
	"os"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/cli"
)

func main() {
	if err := cli.NewServerCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
