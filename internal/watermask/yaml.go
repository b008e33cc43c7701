package watermask

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type polygonFile struct {
	Polygons []struct {
		Name string      `yaml:"name"`
		Ring [][]float64 `yaml:"ring"`
	} `yaml:"polygons"`
}

// Default returns the built-in strait mask: the channel and the bays east
// and west of it.
func Default() *Mask {
	m, err := ParseYAML(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("watermask: embedded defaults are invalid: %v", err))
	}
	return m
}

// LoadYAML reads a polygon file with the same layout as the embedded defaults
func LoadYAML(path string) (*Mask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading polygon file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a polygon document into a mask
func ParseYAML(data []byte) (*Mask, error) {
	var f polygonFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing polygon file: %w", err)
	}
	if len(f.Polygons) == 0 {
		return nil, fmt.Errorf("polygon file defines no polygons")
	}

	polygons := make([]Polygon, 0, len(f.Polygons))
	for _, p := range f.Polygons {
		if len(p.Ring) < 3 {
			return nil, fmt.Errorf("polygon %q has %d vertices, need at least 3", p.Name, len(p.Ring))
		}
		ring := make([]Point, 0, len(p.Ring))
		for i, v := range p.Ring {
			if len(v) != 2 {
				return nil, fmt.Errorf("polygon %q vertex %d: want [lng, lat], got %d values", p.Name, i, len(v))
			}
			ring = append(ring, Point{Lng: v[0], Lat: v[1]})
		}
		polygons = append(polygons, NewPolygon(p.Name, ring))
	}
	return New(polygons), nil
}
