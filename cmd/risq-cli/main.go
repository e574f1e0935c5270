package main

import "github.com/nfrund/risq/cmd/risq-cli/cmd"

func main() {
	cmd.Execute()
}
