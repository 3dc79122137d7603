package contracts

// DownloadRequest is the body of POST /download.
type DownloadRequest struct {
	License string `json:"license"`
	Domain  string `json:"domain"`
	File    string `json:"file"`
}

type DownloadData struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
	ExpiresAt string `json:"expires_at"`
	File      string `json:"file"`
}

type SuccessResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    DownloadData `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
