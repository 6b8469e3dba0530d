package entity

// Config holds configuration for the ledger backend channel.
type Config struct {
	// URL is the base URL of the backend service.
	URL string `mapstructure:"url" default:"http://localhost:9040"`
	// ApiKey authenticates requests to the backend.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
