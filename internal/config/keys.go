package config

const (
	KeyAPIToken       = "courtlistener_api_token"
	KeyBaseURL        = "courtlistener_base_url"
	KeySiteURL        = "courtlistener_site_url"
	KeyRequestTimeout = "request_timeout"
	KeyMaxAttempts    = "max_attempts"
	KeyRetryBackoff   = "retry_backoff"
	KeyLogLevel       = "log_level"
	KeyTransport      = "transport"
	KeyHost           = "host"
	KeyPort           = "port"
	KeyEndpointPath   = "endpoint_path"
	KeyEnvFile        = "env_file"
)
