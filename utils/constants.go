// File: utils/constants.go
package utils

// CatalogCacheKey is the Redis key holding the cached experience list.
const CatalogCacheKey = "catalog:experiences"
