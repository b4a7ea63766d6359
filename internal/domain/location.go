package domain

// LocationType is the map layer a location belongs to.
type LocationType string

const (
	LocationCamera     LocationType = "camera"
	LocationFire       LocationType = "fire"
	LocationSensor     LocationType = "sensor"
	LocationEvacuation LocationType = "evacuation"
	LocationResource   LocationType = "resource"
)

// LayerAll selects every location regardless of type.
const LayerAll = "all"

// MapLocation is a point of interest on the situation map.
type MapLocation struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Type   LocationType      `json:"type"`
	Lat    float64           `json:"lat"`
	Lng    float64           `json:"lng"`
	Status string            `json:"status"` // active, alert, offline, warning
	Data   map[string]string `json:"data,omitempty"`
}

// FilterLocations returns the locations whose type equals layer. The layer
// "all", or an empty layer, returns every location. The input is not modified.
func FilterLocations(locations []MapLocation, layer string) []MapLocation {
	if layer == "" || layer == LayerAll {
		out := make([]MapLocation, len(locations))
		copy(out, locations)
		return out
	}

	out := make([]MapLocation, 0, len(locations))
	for _, loc := range locations {
		if string(loc.Type) == layer {
			out = append(out, loc)
		}
	}
	return out
}
