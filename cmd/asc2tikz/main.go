package main

import "github.com/OpenTraceLab/asc2tikz/cmd/asc2tikz/cmd"

func main() {
	cmd.Execute()
}
