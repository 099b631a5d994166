package main

import "github.com/chibuka/solve/cmd"

func main() {
	cmd.Execute()
}
