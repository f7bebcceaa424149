package domain

type JurisdictionQuery struct {
	Latitude  *float64 `json:"latitude" validate:"required,lat"`
	Longitude *float64 `json:"longitude" validate:"required,lng"`
}

type JurisdictionResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	State     string  `json:"state"`
	City      string  `json:"city"`
	Accuracy  string  `json:"accuracy"`
	Timestamp string  `json:"timestamp"`
}
