// cmd/fastq-filter/main.go
package main

import (
	"gbkit/internal/appshell"
	"gbkit/internal/fastqapp"
)

func main() {
	appshell.Main(fastqapp.RunContext)
}
