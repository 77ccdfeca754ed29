package db

const sessionColumns = `
	s.id,
	s.user_id,
	s.device_id,
	s.device_name,
	s.device_type,
	s.platform,
	s.browser,
	s.os,
	s.ip_address,
	s.user_agent,
	s.location,
	s.fingerprint,
	s.last_active,
	s.access_token,
	s.refresh_token,
	s.is_active,
	s.expires_at,
	s.last_refresh,
	s.created_at,
	s.updated_at`

const sessionGetQ = `
SELECT` + sessionColumns + `
FROM sessions s
WHERE s.id = $1
`

const sessionGetActiveByDeviceQ = `
SELECT` + sessionColumns + `
FROM sessions s
WHERE s.user_id = $1 AND s.device_id = $2 AND s.is_active AND s.expires_at > $3
ORDER BY s.last_active DESC
LIMIT 1
`

const sessionGetByRefreshQ = `
SELECT` + sessionColumns + `
FROM sessions s
WHERE s.id = $1 AND s.refresh_token = $2 AND s.is_active AND s.expires_at > $3
`

const sessionListActiveQ = `
SELECT` + sessionColumns + `
FROM sessions s
WHERE s.user_id = $1 AND s.is_active AND s.expires_at > $2
ORDER BY s.last_active DESC, s.id ASC
`

const sessionRetireExpiredQ = `
UPDATE sessions
SET is_active = FALSE,
	updated_at = $3
WHERE user_id = $1 AND device_id = $2 AND is_active AND expires_at <= $3
`

const sessionCreateQ = `
INSERT INTO sessions (
	id, user_id, device_id,
	device_name, device_type, platform, browser, os,
	ip_address, user_agent, location, fingerprint, last_active,
	access_token, refresh_token, is_active, expires_at,
	created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, TRUE, $16, $17, $17)
`

const sessionExtendQ = `
UPDATE sessions s
SET expires_at = $2,
	device_name = COALESCE(NULLIF($3, ''), s.device_name),
	ip_address = $4,
	user_agent = $5,
	location = COALESCE(NULLIF($6, ''), s.location),
	fingerprint = COALESCE(NULLIF($7, ''), s.fingerprint),
	last_active = $8,
	updated_at = $8
WHERE s.id = $1 AND s.is_active
RETURNING` + sessionColumns + `
`

const sessionRotateQ = `
UPDATE sessions s
SET access_token = $3,
	refresh_token = $4,
	last_refresh = $5,
	last_active = $5,
	updated_at = $5
WHERE s.id = $1 AND s.refresh_token = $2 AND s.is_active AND s.expires_at > $5
RETURNING` + sessionColumns + `
`

const sessionTouchQ = `
UPDATE sessions
SET last_active = $2
WHERE id = $1 AND is_active AND last_active < $2
`

const sessionDeactivateQ = `
UPDATE sessions
SET is_active = FALSE,
	updated_at = $2
WHERE id = $1 AND is_active
`
