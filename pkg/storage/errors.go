package storage

import "errors"

var (
	// ErrKeyNotFound indicates the requested key has no stored value
	ErrKeyNotFound = errors.New("storage.key_not_found")

	// ErrReadFailed indicates the backend could not be read
	ErrReadFailed = errors.New("storage.read_failed")

	// ErrWriteFailed indicates the backend could not be written
	ErrWriteFailed = errors.New("storage.write_failed")

	// ErrRedisNotReady indicates the Redis backend could not be reached
	ErrRedisNotReady = errors.New("storage.redis_not_ready")

	// ErrInvalidRedisURL indicates the Redis connection URL could not be parsed
	ErrInvalidRedisURL = errors.New("storage.invalid_redis_url")
)

// IsNotFound reports whether err indicates a missing key rather than a
// backend failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
