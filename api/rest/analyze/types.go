package analyze

// Request represents the request body for pasted-code analysis
type Request struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
}
