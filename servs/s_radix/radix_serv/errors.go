package radix_serv

import "errors"

var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrKeyExists    = errors.New("key already exists")
	ErrInvalidValue = errors.New("value must be valid JSON")
)
