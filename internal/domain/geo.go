package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const GeoJSONPointType = "Point"

// GeoJSONPoint stores coordinates in GeoJSON order: [longitude, latitude].
type GeoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func NewGeoJSONPoint(lng, lat float64) *GeoJSONPoint {
	return &GeoJSONPoint{Type: GeoJSONPointType, Coordinates: []float64{lng, lat}}
}

func (p GeoJSONPoint) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *GeoJSONPoint) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported geo point column type %T", src)
	}
}

// GeoPoint is a location as stored on equipment. Lat/Lng are the legacy
// fields; Coordinates is what proximity queries use and must agree with them.
type GeoPoint struct {
	Address     string        `json:"address,omitempty"`
	Lat         *float64      `json:"lat,omitempty"`
	Lng         *float64      `json:"lng,omitempty"`
	Coordinates *GeoJSONPoint `json:"coordinates,omitempty"`
}

func (g GeoPoint) HasLatLng() bool {
	return g.Lat != nil && g.Lng != nil
}
