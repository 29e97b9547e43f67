package datastore

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrNotReady = errors.New("datasets are still loading")
)
