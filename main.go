package main

import "vaultfind/cmd"

func main() {
	cmd.Execute()
}
