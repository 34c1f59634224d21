package constants

import (
	"fmt"
	"time"
)

// Redis keys follow tourly:{module}:{operation}:{identifier?}

const (
	TTL_STATIC_LONG       = 24 * time.Hour
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour
	TTL_DYNAMIC_MEDIUM    = 10 * time.Minute
)

const (
	CACHE_PREFIX = "tourly"
)

// Bookings module
const (
	CACHE_KEY_BOOKINGS_LIST  = CACHE_PREFIX + ":bookings:list:all"
	CACHE_KEY_BOOKINGS_STATS = CACHE_PREFIX + ":bookings:stats"
)

const (
	TTL_BOOKINGS_LIST = TTL_SEMI_STATIC_SHORT
)

// Contacts module
const (
	CACHE_KEY_CONTACTS_LIST = CACHE_PREFIX + ":contacts:list:all"
)

const (
	TTL_CONTACTS_LIST = TTL_SEMI_STATIC_SHORT
)

// Trips module
const (
	CACHE_KEY_TRIPS_LIST = CACHE_PREFIX + ":trips:list:lang:" // + language
)

const (
	TTL_TRIPS_LIST = TTL_STATIC_LONG
)

// Rate limiting
const (
	RATE_LIMIT_PREFIX = CACHE_PREFIX + ":ratelimit"
)

func BuildTripsListKey(lang string) string {
	return CACHE_KEY_TRIPS_LIST + lang
}

func BuildRateLimitKey(limitType, clientKey string) string {
	return fmt.Sprintf("%s:%s:%s", RATE_LIMIT_PREFIX, limitType, clientKey)
}

// Invalidation patterns

func GetBookingInvalidationKeys() []string {
	return []string{CACHE_KEY_BOOKINGS_LIST, CACHE_KEY_BOOKINGS_STATS}
}

func GetContactInvalidationKeys() []string {
	return []string{CACHE_KEY_CONTACTS_LIST, CACHE_KEY_BOOKINGS_STATS}
}

// GetSeedInvalidationPatterns matches every cached booking and contact key
func GetSeedInvalidationPatterns() []string {
	return []string{CACHE_PREFIX + ":bookings:*", CACHE_PREFIX + ":contacts:*"}
}
