package main

import "github.com/blakeyoder/blakeyoderdotcom/cmd"

func main() {
	cmd.Execute()
}
