package main

import "github.com/notargets/dgeuler1d/cmd"

func main() {
	cmd.Execute()
}
