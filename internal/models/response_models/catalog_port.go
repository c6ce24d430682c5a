package response_models

// CatalogPort is an entry in the built-in catalog of well-known cruise
// ports, used for client-side autocomplete when adding a port to a trip.
type CatalogPort struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
