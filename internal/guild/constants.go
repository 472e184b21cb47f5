package guild

import "time"

// Cache configuration
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgGuildEnabled  = "Guild game setting changed"
	LogMsgAdminAdded    = "Guild admin added"
	LogMsgAdminRemoved  = "Guild admin removed"
	LogMsgPermissionNay = "Permission denied"
)

// Error contexts
const (
	ErrContextGetSettings = "failed to load guild settings"
	ErrContextSetEnabled  = "failed to update guild setting"
	ErrContextAddAdmin    = "failed to add guild admin"
	ErrContextRemoveAdmin = "failed to remove guild admin"
)
