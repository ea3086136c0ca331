package main

import "caddraw/cmd/caddraw/cmd"

func main() {
	cmd.Execute()
}
