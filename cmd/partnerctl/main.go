package main

import (
	"github.com/nashtto/partnerctl/internal/cmd"
)

func main() {
	cmd.Execute()
}
