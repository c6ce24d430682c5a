package response_models

type HealthChecks struct {
	Database  string `json:"database"`
	AIService string `json:"ai_service"`
}

type HealthResponse struct {
	Status    string       `json:"status"`
	Service   string       `json:"service"`
	Timestamp string       `json:"timestamp"`
	Checks    HealthChecks `json:"checks"`
}
