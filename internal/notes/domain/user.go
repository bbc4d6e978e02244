package domain

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string // trimmed, lower-cased
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
}
