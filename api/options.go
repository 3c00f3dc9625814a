package api

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	APITokenOption   OptionType = "api_token"
	BaseURLOption    OptionType = "base_url"
	TimeoutOption    OptionType = "timeout"
	APIVersionOption OptionType = "api_version"
)

// Option represents a generic configuration option for the API client
type Option struct {
	Type  OptionType
	Value any
}

// WithAPIToken creates an option to set the bearer token
func WithAPIToken(token string) Option {
	return Option{
		Type:  APITokenOption,
		Value: token,
	}
}

// WithBaseURL creates an option to override the API base URL
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// WithTimeout creates an option to set the per-call timeout in seconds
func WithTimeout(timeout int) Option {
	return Option{
		Type:  TimeoutOption,
		Value: timeout,
	}
}

// WithAPIVersion creates an option to override the API versioning header
func WithAPIVersion(version string) Option {
	return Option{
		Type:  APIVersionOption,
		Value: version,
	}
}
