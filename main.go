package main

import "github.com/nownext/nownext/cmd"

func main() {
	cmd.Execute()
}
