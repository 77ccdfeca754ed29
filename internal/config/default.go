package config

import "time"

type ctxKey string

const (
	UidKey     ctxKey = "uid"
	SessionKey ctxKey = "session"
	DeviceKey  ctxKey = "device"
)

const ErrorSpanTag = "error"

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

const (
	DefaultCacheTime  = time.Hour
	MinCacheTime      = time.Minute * 5
	BackgroundTimeout = time.Second * 5
)

const (
	AccessCookieName     = "access"
	RefreshCookieName    = "refresh"
	AccessTokenDuration  = time.Minute * 15
	RefreshTokenDuration = time.Hour * 24 * 7
)

const (
	PlatformHeader   = "X-Device-Platform"
	TimezoneHeader   = "X-Device-Timezone"
	ScreenHeader     = "X-Device-Screen"
	DeviceNameHeader = "X-Device-Name"
	RefreshHeader    = "X-Refresh-Token"
	CountryHeader    = "CF-IPCountry"
	AltCountryHeader = "X-Country-Code"
)
