package model

// ExtractionResult is the normalized outcome of one text-recognition call.
// It is transient: produced per request and never persisted.
//
// Found distinguishes "the service looked and saw no text" from a transport
// failure, which is reported as an error instead and never folded into
// Found == false.
type ExtractionResult struct {
	Found bool
	Text  string
}
