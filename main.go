package main

import (
	"pfeifer.dev/acc/cli"
)

func main() {
	cli.Handle()
}
