// cmd/fasta-oneline/main.go
package main

import (
	"gbkit/internal/appshell"
	"gbkit/internal/onelineapp"
)

func main() {
	appshell.Main(onelineapp.RunContext)
}
