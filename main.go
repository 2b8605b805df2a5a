package main

import "github.com/mj1618/dockyard/cmd"

func main() {
	cmd.Execute()
}
