package constants

// Role describes what a caller is allowed to do
type Role string

const (
	RoleAdmin   Role = "ADMIN"   // dashboard operators
	RoleMember  Role = "MEMBER"  // authenticated end users
	RoleService Role = "SERVICE" // API-key callers (static site builds, bots)
)

func (r Role) String() string { return string(r) }
