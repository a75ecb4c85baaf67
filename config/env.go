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
	defaultAppPort       = "8080"
	defaultAppEnv        = "local"
	defaultJWTSecret     = "change-me-in-production"
	defaultAdminEmail    = "admin@backoffice.local"
	defaultRedisAddr     = "localhost:6379"
	defaultProductsPage  = 7
	defaultCustomersPage = 10
	defaultOrdersPage    = 10

	// bcrypt hash of "password" — for local development only.
	defaultAdminPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once. Missing files are not an error;
// defaults cover every key.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":            defaultAppPort,
		"APP_ENV":             defaultAppEnv,
		"JWT_SECRET":          defaultJWTSecret,
		"ADMIN_EMAIL":         defaultAdminEmail,
		"ADMIN_PASSWORD_HASH": defaultAdminPasswordHash,
		"REDIS_ADDR":          defaultRedisAddr,
		"REDIS_PASSWORD":      "",
		"PRODUCTS_PER_PAGE":   strconv.Itoa(defaultProductsPage),
		"CUSTOMERS_PER_PAGE":  strconv.Itoa(defaultCustomersPage),
		"ORDERS_PER_PAGE":     strconv.Itoa(defaultOrdersPage),
	}
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

// AdminEmail and AdminPasswordHash identify the single back-office operator
// account. There is no user table; the dashboard has exactly one login.
func AdminEmail() string {
	_ = Load()
	return get("ADMIN_EMAIL", defaultAdminEmail)
}

func AdminPasswordHash() string {
	_ = Load()
	return get("ADMIN_PASSWORD_HASH", defaultAdminPasswordHash)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// Per-page defaults mirror the dashboard tables: 7 products, 10 customers,
// 10 orders per screen.
func ProductsPerPage() int  { return intValue("PRODUCTS_PER_PAGE", defaultProductsPage) }
func CustomersPerPage() int { return intValue("CUSTOMERS_PER_PAGE", defaultCustomersPage) }
func OrdersPerPage() int    { return intValue("ORDERS_PER_PAGE", defaultOrdersPage) }

func intValue(key string, fallback int) int {
	_ = Load()
	n, err := strconv.Atoi(get(key, ""))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func loadFromFiles(configPath, envPath string) error {
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
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
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

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
