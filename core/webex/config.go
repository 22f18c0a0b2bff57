package webex

// Config holds configuration for the Webex API client.
type Config struct {
	// Token is the access token used for bearer authentication.
	Token string `mapstructure:"token" default:""`
	// APIHost is the base URL of the public Webex API.
	APIHost string `mapstructure:"api_host" default:"https://webexapis.com"`
	// CPAPIHost is the base URL of the provisioning API used for greeting
	// uploads.
	CPAPIHost string `mapstructure:"cpapi_host" default:"https://cpapi-r.wbx2.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
