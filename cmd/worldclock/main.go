package main

import "github.com/alechenninger/worldclock/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
