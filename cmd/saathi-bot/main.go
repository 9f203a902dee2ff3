package main

import (
	"log"

	"github.com/Niharikab29/Airport-Saathi/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
