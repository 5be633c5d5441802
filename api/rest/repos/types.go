package repos

// ListRequest carries the GitHub access token for the listing call.
// The token is used for this one request and never stored.
type ListRequest struct {
	Token string `json:"token"`
}

// ScanRequest identifies one repository to scan
type ScanRequest struct {
	Owner string `json:"owner" binding:"required"`
	Repo  string `json:"repo" binding:"required"`
	Token string `json:"token" binding:"required"`
}
