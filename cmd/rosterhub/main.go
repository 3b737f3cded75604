package main

import (
	"github.com/rosterhub/rosterhub/internal/cli"
)

func main() {
	cli.Execute()
}
