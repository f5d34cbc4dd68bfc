package config

import (
	"os"
	"strconv"
)

// GetEnv membaca environment variable, pakai fallback kalau tidak diset
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt sama seperti GetEnv tapi untuk nilai angka (misal PORT)
func GetEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
