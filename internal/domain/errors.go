package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidName signals a collection or alias name that fails validation.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidQuery signals GraphQL text that fails the syntactic check.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrWeaviateUnavailable signals a failed request to the Weaviate instance.
	ErrWeaviateUnavailable = errors.New("weaviate unavailable")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
