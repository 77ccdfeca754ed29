package db

const userGetByIDQ = `
SELECT 
	u.id, 
	u.name, 
	u.email, 
	u.avatar,
	u.is_active,
	u.is_email_verified,
	u.created_at, 
	u.updated_at
FROM users u
WHERE u.id = $1
`

const userGetByEmailQ = `
SELECT 
	u.id, 
	u.name, 
	u.email, 
	u.password,
	u.avatar,
	u.is_active,
	u.is_email_verified,
	u.created_at, 
	u.updated_at
FROM users u
WHERE u.email = $1
`

const userCreateQ = `
INSERT INTO users (name, password, email, avatar, is_active, is_email_verified) 
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
