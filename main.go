package main

import (
	"theo/cli"
)

func main() {
	cli.Start()
}
