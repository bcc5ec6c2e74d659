package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// BodyLimitMB caps the request body size, which bounds uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64" validate:"gt=0"`
	// Swagger enables the /swagger UI.
	Swagger bool `mapstructure:"swagger" default:"true"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// BodyLimit returns the body limit in bytes, defaulting to 64MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 64 << 20
	}
	return c.BodyLimitMB << 20
}
