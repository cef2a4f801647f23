package main

import "github.com/douglaslab/cn2threejs/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
