package main

import "github.com/dotcommander/basin/cmd"

func main() {
	cmd.Execute()
}
