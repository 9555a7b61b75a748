package embedding

import "errors"

var (
	ErrModelNotFound = errors.New("model not found")
	ErrEmptySentence = errors.New("sentence must not be empty")
)
