package main

import "github.com/lepinkainen/cardscout/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
