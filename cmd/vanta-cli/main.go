package main

import "vanta/cmd/vanta-cli/cmd"

func main() {
	cmd.Execute()
}
