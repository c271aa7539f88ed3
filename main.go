package main

import (
	"github.com/atcg/velvetTarget/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
