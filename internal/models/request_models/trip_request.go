package request_models

type CreateTripRequest struct {
	ShipName   string `json:"ship_name" binding:"required"`
	CruiseLine string `json:"cruise_line"`
}

type UpdateTripRequest struct {
	ShipName   *string `json:"ship_name"`
	CruiseLine *string `json:"cruise_line"`
}
