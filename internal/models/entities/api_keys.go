package entities

// APIKeyStatus is the sqlx row for an api_keys lookup
type APIKeyStatus struct {
	ID     int64 `db:"id"`
	Status bool  `db:"status"`
}
