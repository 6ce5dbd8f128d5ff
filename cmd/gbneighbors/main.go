// cmd/gbneighbors/main.go
package main

import (
	"gbkit/internal/app"
	"gbkit/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
