package main

import (
	"github.com/0xPolygon/rsa-verifier/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}
