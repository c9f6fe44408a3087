package main

import "github.com/pulpworks/pulpstore/internal/cli"

func main() {
	cli.Execute()
}
