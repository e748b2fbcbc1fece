package repository

// CacheRepository caches formatted pricing quotes keyed by the request
// parameters that determine them.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
