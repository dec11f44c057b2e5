package main

import (
	"os"

	"github.com/asnlabs/asn/cmd/asn/commands"
)

func main() {
	os.Exit(commands.Execute())
}
