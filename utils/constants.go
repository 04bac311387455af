// File: utils/constants.go
package utils

import "time"

// SlotCachePrefix is the prefix used for Redis available-slot cache keys.
const SlotCachePrefix = "slots:"

// SlotCacheTTL is the time-to-live for available-slot cache entries.
const SlotCacheTTL = 30 * time.Second

// AssistCachePrefix is the prefix used for assistant answer cache keys.
const AssistCachePrefix = "assist:"

// AssistCacheTTL is the time-to-live for assistant answer cache entries.
const AssistCacheTTL = 30 * time.Minute

// AuthTokenTTL is the lifetime of issued login tokens.
const AuthTokenTTL = 24 * time.Hour
