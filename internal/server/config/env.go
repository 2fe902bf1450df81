package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	EndpointAddr          string        `env:"ADDRESS"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY"`
	OTPValidityDuration   time.Duration `env:"OTP_EXPIRY"`
	OTPLength             int           `env:"OTP_LENGTH"`
	MailerAPIKey          string        `env:"EMAIL_API_KEY"`
	MailerSender          string        `env:"EMAIL_SENDER"`
	S3RootUser            string        `env:"S3_ROOT_USER"`
	S3RootPassword        string        `env:"S3_ROOT_PASSWORD"`
	S3Bucket              string        `env:"S3_BUCKET"`
	S3Region              string        `env:"S3_REGION"`
	S3BaseEndpoint        string        `env:"S3_BASE_ENDPOINT"`
}

// parseEnv overlays Config with values from environment variables.
// Unset variables leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		panic(err)
	}

	if raw.EndpointAddr != "" {
		cfg.EndpointAddr = raw.EndpointAddr
	}
	if raw.DatabaseDSN != "" {
		cfg.DatabaseDSN = raw.DatabaseDSN
	}
	if raw.SecretKey != "" {
		cfg.SecretKey = raw.SecretKey
	}
	if raw.TokenValidityDuration != 0 {
		cfg.TokenValidityDuration = raw.TokenValidityDuration
	}
	if raw.OTPValidityDuration != 0 {
		cfg.OTPValidityDuration = raw.OTPValidityDuration
	}
	if raw.OTPLength != 0 {
		cfg.OTPLength = raw.OTPLength
	}
	if raw.MailerAPIKey != "" {
		cfg.MailerAPIKey = raw.MailerAPIKey
	}
	if raw.MailerSender != "" {
		cfg.MailerSender = raw.MailerSender
	}
	if raw.S3RootUser != "" {
		cfg.S3RootUser = raw.S3RootUser
	}
	if raw.S3RootPassword != "" {
		cfg.S3RootPassword = raw.S3RootPassword
	}
	if raw.S3Bucket != "" {
		cfg.S3Bucket = raw.S3Bucket
	}
	if raw.S3Region != "" {
		cfg.S3Region = raw.S3Region
	}
	if raw.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = raw.S3BaseEndpoint
	}
}
