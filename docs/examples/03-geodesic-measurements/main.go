package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beetlebugorg/gml/pkg/geom"
	"github.com/beetlebugorg/gml/pkg/gml"
	"github.com/beetlebugorg/gml/pkg/sphere"
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

	// Great-circle distance between two cities
	chicago := []float64{-87.63, 41.88}
	minneapolis := []float64{-93.27, 44.98}
	km := sphere.Distance(chicago, minneapolis) / 1000
	fmt.Printf("Chicago to Minneapolis: %.1f km\n", km)

	// Geodesic area and perimeter of each decoded polygon
	for _, feature := range collection.Features() {
		g := feature.Geometry()
		if g == nil || g.Type != geom.TypePolygon {
			continue
		}

		area := sphere.Area(g, sphere.Options{})
		length := sphere.Length(g, sphere.Options{})

		fmt.Printf("%s: %.0f km² area, %.0f km perimeter\n",
			feature.ID(), area/1e6, length/1000)
	}
}
