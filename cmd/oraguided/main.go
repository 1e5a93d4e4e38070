package main

import (
	"log"

	"github.com/oraguide/oraguide/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
