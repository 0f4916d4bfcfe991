package main

import (
	"github.com/jjtimmons/gcplot/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
