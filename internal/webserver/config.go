package webserver

import "time"

// Config stores the application settings, read from environment variables.
type Config struct {
	// LibraryPath holds the absolute path to the folder containing the transcripts
	LibraryPath string `env:"LIB_PATH"`
	// HomeDir holds the path to the directory where the index and the database are stored
	HomeDir string
	// DBPath holds the path to the application database, defaulting to the home dir
	DBPath string `env:"DB_PATH"`
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" env-default:"3000"`
	// BatchSize indicates the number of transcripts persisted by the indexer in one operation
	BatchSize int `env:"BATCH_SIZE" env-default:"100"`
	// JwtSecret stores the string to use to sign JWTs
	JwtSecret []byte `env:"JWT_SECRET"`
	// RequireAuth is a switch to control whether users must be logged in to access the application
	RequireAuth bool `env:"REQUIRE_AUTH" env-default:"false"`
	// MinPasswordLength is the minimum length acceptable for passwords
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	// SessionTimeout specifies the maximum time a user session may last
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	// FQDN stores the domain name of the server
	FQDN string `env:"FQDN" env-default:"localhost"`
	// SkipIndex signals whether to bypass the indexing process or not
	SkipIndex bool `env:"SKIP_INDEX"`
}
