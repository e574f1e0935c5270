package handlers

// HealthResponse is the DTO returned by GET /health.
type HealthResponse struct {
	Status  string   `json:"status"`
	Modules []string `json:"modules"`
	Topics  []string `json:"topics"`
	Uptime  string   `json:"uptime"`
}

// ErrorResponse is the JSON body for errors on requests that accept JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
