package main

import (
	"log"
	"os"

	geminimcp "github.com/viant/gemini-mcp"
)

func main() {
	if err := geminimcp.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
