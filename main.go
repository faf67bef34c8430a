package main

import (
	"github.com/deomiarn/securevault/cmd"
)

func main() {
	cmd.Run()
}
