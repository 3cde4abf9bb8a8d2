package main

import "transgen/internal/cli"

func main() {
	cli.Execute()
}
