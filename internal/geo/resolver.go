package geo

// Resolver classifies a coordinate pair into a named U.S. state using an
// ordered list of bounding boxes. It is an approximate classifier, not a
// geocoder: boxes overlap along state borders and the first match wins, so
// the declaration order below is part of the contract and must not be
// reordered.
type Resolver struct {
	regions []region
}

type region struct {
	state  string
	city   string
	latMin float64
	latMax float64
	lngMin float64
	lngMax float64
}

func NewResolver() *Resolver {
	return &Resolver{regions: stateRegions}
}

// Resolve returns the first region whose box contains the point, or
// Unknown/Unknown City when nothing matches. Total over all float inputs.
func (r *Resolver) Resolve(lat, lng float64) (state, city string) {
	for _, reg := range r.regions {
		if lat >= reg.latMin && lat <= reg.latMax && lng >= reg.lngMin && lng <= reg.lngMax {
			return reg.state, reg.city
		}
	}
	return "Unknown", "Unknown City"
}

// stateRegions is evaluated top to bottom. Several boxes intersect along the
// east coast (Virginia/Maryland/Pennsylvania); precedence there is whatever
// this order says, nothing tighter.
var stateRegions = []region{
	{"California", "Los Angeles", 32.5, 42.0, -124.4, -114.1},
	{"New York", "New York City", 40.4, 45.0, -79.8, -71.8},
	{"Florida", "Miami", 25.8, 31.0, -87.6, -79.8},
	{"Texas", "Houston", 25.8, 36.5, -106.6, -93.5},
	{"Illinois", "Chicago", 37.0, 42.5, -91.5, -87.0},
	{"Pennsylvania", "Philadelphia", 39.7, 42.3, -80.5, -74.7},
	{"Ohio", "Columbus", 38.4, 41.9, -84.8, -80.5},
	{"Georgia", "Atlanta", 30.4, 35.0, -85.6, -80.8},
	{"North Carolina", "Charlotte", 33.8, 36.6, -84.3, -75.5},
	{"Michigan", "Detroit", 41.6, 47.1, -90.6, -82.4},
	{"New Jersey", "Newark", 38.9, 41.4, -75.6, -73.9},
	{"Virginia", "Richmond", 36.5, 39.5, -83.7, -75.2},
	{"Washington", "Seattle", 45.5, 49.0, -124.8, -116.9},
	{"Arizona", "Phoenix", 31.3, 37.0, -114.8, -109.0},
	{"Massachusetts", "Boston", 41.2, 42.9, -73.5, -69.9},
	{"Tennessee", "Nashville", 35.0, 36.7, -90.3, -81.6},
	{"Indiana", "Indianapolis", 37.8, 41.8, -88.1, -84.8},
	{"Missouri", "Kansas City", 36.0, 40.6, -95.8, -89.1},
	{"Maryland", "Baltimore", 37.9, 39.7, -79.5, -75.0},
	{"Wisconsin", "Milwaukee", 42.5, 47.1, -92.9, -86.2},
	{"Colorado", "Denver", 37.0, 41.0, -109.1, -102.0},
}
