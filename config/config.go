package config

import (
    "os"
    "strconv"
)

// Data source selection
const (
    SourceCSV      = "csv"
    SourcePostgres = "postgres"
)

// DataSource returns which tabular backend villages load from.
func DataSource() string {
    source := getEnvWithDefault("DATA_SOURCE", SourceCSV)
    if source != SourceCSV && source != SourcePostgres {
        return SourceCSV
    }
    return source
}

// CSVPath returns the village CSV location.
func CSVPath() string {
    return getEnvWithDefault("VILLAGES_CSV", "sample_villages.csv")
}

// Database configuration
func getPostgresConnString() string {
    host := getEnvWithDefault("DB_HOST", "localhost")
    port := getEnvWithDefault("DB_PORT", "5432")
    user := getEnvWithDefault("DB_USER", "postgres")
    password := getEnvWithDefault("DB_PASSWORD", "1234")
    dbname := getEnvWithDefault("DB_NAME", "adarshpulse")
    sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")

    return "host=" + host + " port=" + port + " user=" + user +
        " password=" + password + " dbname=" + dbname + " sslmode=" + sslmode
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
