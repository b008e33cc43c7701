package watermask

import (
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
)

// LoadShapefile builds a mask from the polygon records of an ESRI shapefile.
// Multi-part records contribute only their largest ring, which is normally
// the outer boundary. The first attribute column, if any, names the polygon.
func LoadShapefile(path string) (*Mask, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile: %w", err)
	}
	defer shape.Close()

	hasNames := len(shape.Fields()) > 0

	var polygons []Polygon
	for shape.Next() {
		n, p := shape.Shape()

		polygon, ok := p.(*shp.Polygon)
		if !ok || len(polygon.Parts) == 0 {
			continue
		}

		name := fmt.Sprintf("polygon-%d", n)
		if hasNames {
			if v := strings.Trim(shape.ReadAttribute(n, 0), " \x00"); v != "" {
				name = v
			}
		}

		start, end := largestPart(polygon)
		ring := make([]Point, 0, end-start)
		for i := start; i < end; i++ {
			pt := polygon.Points[i]
			ring = append(ring, Point{Lng: pt.X, Lat: pt.Y})
		}
		if len(ring) < 3 {
			continue
		}
		polygons = append(polygons, NewPolygon(name, ring))
	}
	if err := shape.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile: %w", err)
	}
	if len(polygons) == 0 {
		return nil, fmt.Errorf("shapefile %s contains no polygons", path)
	}
	return New(polygons), nil
}

// largestPart returns the point index range of the part with the most vertices
func largestPart(polygon *shp.Polygon) (int, int) {
	bestStart, bestEnd := 0, 0
	for i := range polygon.Parts {
		start := int(polygon.Parts[i])
		end := len(polygon.Points)
		if i+1 < len(polygon.Parts) {
			end = int(polygon.Parts[i+1])
		}
		if end-start > bestEnd-bestStart {
			bestStart, bestEnd = start, end
		}
	}
	return bestStart, bestEnd
}
