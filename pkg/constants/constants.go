package constants

import "time"

const (
	CHANNEL_SIZE               = 100             // hub channel buffer
	PROOF_MAX_SIZE             = 5 << 20         // proof-of-payment upload limit (bytes)
	AVATAR_MAX_SIZE            = 2 << 20         // avatar upload limit (bytes)
	STATUS_TTL                 = 24 * time.Hour  // status records expire after this
	REFRESH_TOKEN_EXPIRY_HOURS = 168             // refresh token lifetime, 7 days
	PRESENCE_TTL               = 5 * time.Minute // redis presence key lifetime
	USER_INFO_CACHE_TTL        = 30 * time.Minute
	MESSAGE_LIST_LIMIT         = 100 // default history page size
	TIME_FORMAT                = "2006-01-02 15:04:05"

	// PRESENCE_KEY_PREFIX prefixes the per-user redis presence keys.
	// The chat hub sets them with PRESENCE_TTL and re-arms the ttl while
	// the connection lives, so a crashed node's users fall offline once
	// the ttl lapses. Contact listings read them.
	PRESENCE_KEY_PREFIX = "online:"
)

const (
	USER_STATUS_ENABLE  int8 = 0
	USER_STATUS_DISABLE int8 = 1
)
