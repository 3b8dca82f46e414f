package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/gml/pkg/gml"
)

func main() {
	// Open GML document
	file, err := os.Open("states.gml")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	// Decode features
	decoder := gml.NewDecoder()
	collection, err := decoder.Decode(file)
	if err != nil {
		log.Fatal(err)
	}

	// Print collection info
	fmt.Printf("Features: %d\n", collection.FeatureCount())

	bounds := collection.Bounds()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.MinLon, bounds.MinLat,
		bounds.MaxLon, bounds.MaxLat)

	// Print each feature
	for _, feature := range collection.Features() {
		name, _ := feature.Property("STATE_NAME")
		fmt.Printf("  %s: %v (%s)\n",
			feature.ID(), name, feature.Geometry().Type)
	}
}
