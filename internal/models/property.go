package models

type Property struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	Status   string  `json:"status"`
	Quantity int     `json:"quantity"`
	Income   float64 `json:"income"`
	Location string  `json:"location,omitempty"`
}
