package common

import (
	"os"
)

var (
	// CtxKeys are the keys under which auth data is stored on the request context.
	CtxKeys struct {
		UID        string
		Email      string
		Name       string
		BusinessID string
		Claims     string
	}

	// ProjectID is the GCP project the service runs against.
	ProjectID string

	Env string

	// Production flag indicating if the app is running the production backend.
	Production bool

	// IsLocalhost flag indicating if the app is running on localhost.
	IsLocalhost bool
)

const productionEnv = "production"

func init() {
	CtxKeys.UID = "uid"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"
	CtxKeys.BusinessID = "businessId"
	CtxKeys.Claims = "claims"

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "gigfolio-dev")
	Env = GetEnv("APP_ENV", "development")
	Production = Env == productionEnv
	IsLocalhost = os.Getenv("GAE_SERVICE") == "" && os.Getenv("K_SERVICE") == ""
}

// GetEnv returns the value of the environment variable with the given key,
// or the given default value when the variable is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
