package main

import "github.com/khrees2412/labyrinth/cmd"

func main() {
	cmd.Execute()
}
