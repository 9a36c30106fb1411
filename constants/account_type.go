package constants

// AccountType classifies a synthesized profile.
type AccountType string

// Stable values (these exact strings appear in every export format).
const (
	AccountTypePersonal AccountType = "personal"
	AccountTypeBusiness AccountType = "business"
)
