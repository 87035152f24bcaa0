// cmd/isru-extraction/main.go
package main

import (
	"isru/internal/appshell"
	"isru/internal/modelapp"
)

func main() {
	appshell.Main(modelapp.For("extraction"))
}
