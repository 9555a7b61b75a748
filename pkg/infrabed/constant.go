package infrabed

import "time"

const (
	// DefaultBaseURL is the service root; paths are appended verbatim.
	DefaultBaseURL = "http://localhost:8000/back/"

	// RequestTimeout bounds every call. It is fixed; there is no override.
	RequestTimeout = 100 * time.Second

	PathEmbedOne  = "calcemb"
	PathEmbedMany = "calcembm"

	DefaultErrorMessage = "Unknown Error"

	mimeJSON = "application/json"
)
