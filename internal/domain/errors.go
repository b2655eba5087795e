package domain

import "errors"

var (
	// ErrValidation indicates invalid caller input (empty query, malformed record)
	ErrValidation = errors.New("validation failed")
	// ErrUpstreamUnavailable indicates the product catalog source is unreachable
	ErrUpstreamUnavailable = errors.New("upstream catalog unavailable")
	// ErrModelUnavailable indicates the embedding or language model provider
	// is missing, misconfigured, or unreachable
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrIndexBuild indicates the similarity index could not be built
	ErrIndexBuild = errors.New("index build failed")
	// ErrEmptyResponse indicates the language model returned no usable text
	ErrEmptyResponse = errors.New("empty model response")
)
