// cmd/isru/main.go
package main

import (
	"isru/internal/appshell"
	"isru/internal/rootcmd"
)

func main() {
	appshell.Main(rootcmd.RunContext)
}
