package main

import (
	"os"

	"pingline/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
