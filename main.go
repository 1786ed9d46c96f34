package main

import (
	"github.com/binjuhor/likepost/cmd"
)

func main() {
	cmd.Execute()
}
