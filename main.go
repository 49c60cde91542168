package main

import "github.com/kherrera/taskdeck/cmd"

func main() {
	cmd.Execute()
}
