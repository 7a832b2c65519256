package main

import (
	"log"
	"narou-downloader/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
