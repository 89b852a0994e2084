package main

import (
	"os"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
