package main

import "agendagol-cli/cmd"

func main() {
	cmd.Execute()
}
