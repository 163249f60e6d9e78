package main

import (
	"itemstore/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
