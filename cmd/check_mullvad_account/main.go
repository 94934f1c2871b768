package main

import (
	"os"

	"github.com/bnema/check-mullvad-account/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
