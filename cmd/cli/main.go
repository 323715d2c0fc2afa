package main

import (
	"github.com/mchmarny/creditscore/pkg/cli"
)

func main() {
	cli.Execute()
}
