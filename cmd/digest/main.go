package main

import (
	"os"

	"github.com/nguyentantai21042004/speech-digest/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
