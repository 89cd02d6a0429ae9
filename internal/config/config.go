package config

import (
	"os"
	"strconv"
)

// Config holds the CLI's default settings
type Config struct {
	// TablesPath is where the cipher parameter file lives
	TablesPath string

	// Mode is the default chaining mode name
	Mode string

	// Padding is the default padding scheme name
	Padding string

	// BlockSize is the block size used when generating a fresh table set
	BlockSize int

	// Salt seasons passphrase-derived keys
	Salt string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		TablesPath: getEnv("CHARCIPHER_TABLES", "tables.json"),
		Mode:       getEnv("CHARCIPHER_MODE", "CBC"),
		Padding:    getEnv("CHARCIPHER_PADDING", "BLOCK_COUNT"),
		BlockSize:  getEnvInt("CHARCIPHER_BLOCK_SIZE", 16),
		Salt:       getEnv("CHARCIPHER_SALT", "character-cipher"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
