package main

import "github.com/joakim-hove/opm-material/cmd"

func main() {
	cmd.Execute()
}
