package main

import "github.com/mserignese/gopro-control/cmd"

func main() {
	cmd.Execute()
}
