package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/gml/pkg/gml"
)

func main() {
	// Decode document
	file, err := os.Open("states.gml")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	decoder := gml.NewDecoder()
	collection, err := decoder.Decode(file)
	if err != nil {
		log.Fatal(err)
	}

	// Define viewport (upper midwest)
	viewport := gml.Bounds{
		MinLon: -97.0, MaxLon: -87.0,
		MinLat: 40.0, MaxLat: 49.0,
	}

	// Query R-tree index for visible features (O(log n))
	features := collection.FeaturesInBounds(viewport)

	fmt.Printf("Visible features: %d\n", len(features))

	for _, feature := range features {
		fmt.Printf("  %s: %s\n",
			feature.ID(),
			feature.Geometry().Type)
	}
}
