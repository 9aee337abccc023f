package common

const (
	// MaxDescriptionRunes limits the restaurant description shown on list
	// cards before truncation.
	MaxDescriptionRunes = 50
	// MaxRequestBody limits JSON request bodies for write endpoints.
	MaxRequestBody = 1 << 20
	// MaxUploadMemory bounds in-memory buffering of multipart uploads.
	MaxUploadMemory = 10 << 20
)
