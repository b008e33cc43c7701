// Package watermask answers whether a geographic point lies in navigable water.
package watermask

// Point is a longitude/latitude pair in degrees
type Point struct {
	Lng float64
	Lat float64
}

// Box is an axis-aligned geographic bounding box
type Box struct {
	MinLng, MinLat float64
	MaxLng, MaxLat float64
}

// Contains reports whether the point lies inside the box, edges included
func (b Box) Contains(lng, lat float64) bool {
	return lng >= b.MinLng && lng <= b.MaxLng && lat >= b.MinLat && lat <= b.MaxLat
}

// Polygon is a closed ring approximating one body of water. The ring may or
// may not repeat its first vertex at the end.
type Polygon struct {
	Name string
	Ring []Point
	bbox Box
}

// NewPolygon builds a polygon and caches its bounding box
func NewPolygon(name string, ring []Point) Polygon {
	return Polygon{Name: name, Ring: ring, bbox: boundsOf(ring)}
}

// Contains runs a ray-casting point-in-polygon test
func (p Polygon) Contains(lng, lat float64) bool {
	n := len(p.Ring)
	if n < 3 || !p.bbox.Contains(lng, lat) {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Ring[i], p.Ring[j]
		if (a.Lat > lat) != (b.Lat > lat) {
			crossLng := (b.Lng-a.Lng)*(lat-a.Lat)/(b.Lat-a.Lat) + a.Lng
			if lng < crossLng {
				inside = !inside
			}
		}
	}
	return inside
}

// Mask is an immutable set of water polygons with union semantics
type Mask struct {
	polygons []Polygon
	bounds   Box
}

// New creates a mask from the given polygons
func New(polygons []Polygon) *Mask {
	m := &Mask{polygons: make([]Polygon, 0, len(polygons))}
	var all []Point
	for _, p := range polygons {
		if len(p.Ring) < 3 {
			continue
		}
		p.bbox = boundsOf(p.Ring)
		m.polygons = append(m.polygons, p)
		all = append(all, p.Ring...)
	}
	m.bounds = boundsOf(all)
	return m
}

// Contains reports whether (lng, lat) is inside any water polygon.
// Points on land, and every point for an empty mask, return false.
func (m *Mask) Contains(lng, lat float64) bool {
	if m == nil || !m.bounds.Contains(lng, lat) {
		return false
	}
	for _, p := range m.polygons {
		if p.Contains(lng, lat) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of every polygon in the mask
func (m *Mask) Bounds() Box {
	if m == nil {
		return Box{}
	}
	return m.bounds
}

// Polygons returns a copy of the polygon list
func (m *Mask) Polygons() []Polygon {
	if m == nil {
		return nil
	}
	out := make([]Polygon, len(m.polygons))
	copy(out, m.polygons)
	return out
}

func boundsOf(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{MinLng: pts[0].Lng, MaxLng: pts[0].Lng, MinLat: pts[0].Lat, MaxLat: pts[0].Lat}
	for _, p := range pts[1:] {
		if p.Lng < b.MinLng {
			b.MinLng = p.Lng
		}
		if p.Lng > b.MaxLng {
			b.MaxLng = p.Lng
		}
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
	}
	return b
}
