package main

import "github.com/oraguide/oraguide/pkg/cli"

func main() {
	cli.Execute()
}
