package main

import "github.com/aliarasea/sudoku/cmd"

func main() {
	cmd.Execute()
}
