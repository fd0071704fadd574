package constants

// Raw queries for the sqlx path. Everything else goes through GORM;
// these stay as SQL because they aggregate or hit legacy tables directly.
const (
	QueryRegistrationStatusCounts = `
		SELECT status, COUNT(*) AS total
		FROM team_registrations
		GROUP BY status`

	QueryMemberCount = `SELECT COUNT(*) FROM members`

	QueryCheckinsToday = `
		SELECT COUNT(*)
		FROM members
		WHERE last_checkin >= $1`

	QueryAPIKeyStatus = `SELECT id, status FROM api_keys WHERE key = $1`
)
