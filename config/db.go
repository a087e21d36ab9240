package config

import (
    "bufio"
    "fmt"
    "database/sql"
    "log"
    "os"
    "strings"
    "time"
    _ "github.com/lib/pq"
)

var DB *sql.DB

// LoadEnv loads environment variables from a .env file if one exists.
func LoadEnv() error {
    // Try multiple possible locations for .env file
    possiblePaths := []string{
        ".env",                   // Current directory
        "../.env",                // Parent directory
        os.Getenv("ADARSH_ENV"),  // Environment-specified path
    }

    var loadedFile string
    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            log.Printf("Found .env file at: %s", path)
            break
        }
    }

    if loadedFile == "" {
        // No .env file is fine when everything comes from the environment
        return nil
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.TrimSpace(parts[1])
        // Remove quotes if present
        value = strings.Trim(value, `"'`)
        os.Setenv(key, value)
        if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "secret") {
            log.Printf("Set environment variable: %s", key)
        }
    }

    return scanner.Err()
}

// InitDBWithRetry attempts to connect to PostgreSQL with retries.
func InitDBWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = InitDB()
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(5 * time.Second)
    }
    return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
    db, err := sql.Open("postgres", getPostgresConnString())
    if err != nil {
        return fmt.Errorf("error opening database: %v", err)
    }

    db.SetMaxOpenConns(getEnvAsInt("DB_MAX_OPEN_CONNS", 10))
    db.SetMaxIdleConns(getEnvAsInt("DB_MAX_IDLE_CONNS", 5))
    db.SetConnMaxLifetime(30 * time.Minute)

    if err := db.Ping(); err != nil {
        db.Close()
        return fmt.Errorf("error connecting to database: %v", err)
    }

    DB = db
    return nil
}

func CloseDB() {
    if DB != nil {
        if err := DB.Close(); err != nil {
            log.Printf("Error closing database: %v", err)
        }
    }
}
