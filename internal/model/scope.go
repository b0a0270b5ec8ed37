package model

// Scope carries the identity resolved for the current request.
type Scope struct {
	UserID string
}

// Environment names accepted in config.
const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)
