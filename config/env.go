// Package config loads application configuration from (in order of
// precedence, lowest first): built-in defaults, config/app.json, .env,
// and the process environment.
//
// MONGO_URI and JWT_SECRET carry no defaults on purpose. Validate()
// fails when either is missing and the server refuses to boot.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultAppPort      = "8080"
	defaultAppEnv       = "local"
	defaultMongoDB      = "e-commerce"
	defaultAuthHash     = "plain"
	defaultQueueWorkers = "4"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":           defaultAppPort,
		"APP_ENV":            defaultAppEnv,
		"MONGO_URI":          "",
		"MONGO_DB":           defaultMongoDB,
		"JWT_SECRET":         "",
		"JWT_TTL":            "",
		"AUTH_HASH":          defaultAuthHash,
		"REDIS_ADDR":         "",
		"REDIS_PASSWORD":     "",
		"QUEUE_DRIVER":       "memory",
		"QUEUE_WORKERS":      defaultQueueWorkers,
		"LOG_MONGO":          "",
		"UPLOAD_DISK":        "",
		"STORAGE_LOCAL_ROOT": "storage",
		"STORAGE_URL":        "",
		"S3_BUCKET":          "",
		"S3_REGION":          "us-east-1",
		"S3_KEY":             "",
		"S3_SECRET":          "",
		"S3_ENDPOINT":        "",
		"S3_URL":             "",
		"MAX_BODY_BYTES":     "",
		"RATE_LIMIT":         "0",
	}
}

// Load merges the configuration sources once. Safe to call from every
// accessor; only the first call does work.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFrom("config/app.json", ".env")
	})
	return loadErr
}

// Validate checks that the keys with no safe default are present.
// Call it once at boot, before opening any connection.
func Validate() error {
	if err := Load(); err != nil {
		return err
	}
	var missing []string
	for _, key := range []string{"MONGO_URI", "JWT_SECRET"} {
		if get(key, "") == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: required settings missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func MongoURI() string  { _ = Load(); return get("MONGO_URI", "") }
func MongoDB() string   { _ = Load(); return get("MONGO_DB", defaultMongoDB) }
func JWTSecret() string { _ = Load(); return get("JWT_SECRET", "") }

func AppPort() string { _ = Load(); return get("APP_PORT", defaultAppPort) }
func AppEnv() string  { _ = Load(); return get("APP_ENV", defaultAppEnv) }

// Production reports whether the service runs in a production-like
// environment, which suppresses internal error detail in 500 responses.
func Production() bool {
	env := AppEnv()
	return env == "production" || env == "prod"
}

func RedisAddr() string     { _ = Load(); return get("REDIS_ADDR", "") }
func RedisPassword() string { _ = Load(); return get("REDIS_PASSWORD", "") }

func AuthHash() string { _ = Load(); return get("AUTH_HASH", defaultAuthHash) }

func QueueDriver() string { _ = Load(); return get("QUEUE_DRIVER", "memory") }

// UploadDisk names the storage disk for uploaded files. Empty (the
// default) keeps uploads in transient memory only.
func UploadDisk() string { _ = Load(); return get("UPLOAD_DISK", "") }

// RateLimitPerMin is the per-IP request ceiling per minute. Zero (the
// default) disables limiting; the storefront contract defines no 429s.
func RateLimitPerMin() int {
	_ = Load()
	n, err := strconv.Atoi(get("RATE_LIMIT", "0"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Get reads any config key by name with a fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

func loadFrom(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}
	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	// The real environment wins over every file source.
	for key := range loaded {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			loaded[key] = strings.TrimSpace(v)
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()
	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}
	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.Trim(strings.TrimSpace(line[idx+1:]), `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}
	return fallback
}

// Set overrides a single key in-process. Intended for tests.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	values[strings.ToUpper(key)] = value
	mu.Unlock()
}
