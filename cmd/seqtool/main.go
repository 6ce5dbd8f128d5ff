// cmd/seqtool/main.go
package main

import (
	"gbkit/internal/appshell"
	"gbkit/internal/seqapp"
)

func main() {
	appshell.Main(seqapp.RunContext)
}
