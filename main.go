package main

import "github.com/jrequejo/horex/cmd"

func main() {
	cmd.Execute()
}
