// cmd/gbrecords/main.go
package main

import (
	"gbkit/internal/appshell"
	"gbkit/internal/recordsapp"
)

func main() {
	appshell.Main(recordsapp.RunContext)
}
