package resource

import (
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"

	"weather-app/pkg/util/numberutils"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init makes a best-effort load; main calls Init and fails fast on error.
func init() {
	_ = Init(Path())
}

// Path returns PROPERTIES_FILE_PATH or the default application properties location.
func Path() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		return value
	}
	return defaultPropertiesPath
}

// Init loads the YAML properties file, resolving ${ENV} and ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties from %s: %w", filepath, err)
	}

	resolved := viper.New()
	flatten("", v.AllSettings(), resolved)

	mu.Lock()
	properties = resolved
	mu.Unlock()
	return nil
}

// Set overrides a single property. CLI flags and tests use it.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	properties.Set(key, value)
}

// flatten walks the YAML tree and stores every leaf under its dotted key.
func flatten(prefix string, data map[string]any, target *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolvedValue, ok := resolveEnvVariable(v); ok {
				target.Set(fullKey, resolvedValue)
			}
		case map[string]any:
			flatten(fullKey, v, target)
		default:
			target.Set(fullKey, v)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} placeholder. Plain strings pass through.
// An unset variable without a default reports false so the key stays unset.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value, true
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue, true
	}
	if matches[2] != "" {
		return matches[2], true
	}
	return "", false
}

func get() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func Get(key string) any {
	return get().Get(key)
}

func IsSet(key string) bool {
	return get().IsSet(key)
}

func GetString(key string) string {
	return get().GetString(key)
}

// GetStringOrDefault returns the property or defaultValue when it is unset or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return get().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return get().GetDuration(key)
}

func GetInt(key string) int {
	return get().GetInt(key)
}

// GetIntOrDefault returns the property or defaultValue when it is unset or not a number.
func GetIntOrDefault(key string, defaultValue int) int {
	if !IsSet(key) {
		return defaultValue
	}
	return numberutils.ToIntWithDefault(GetString(key), defaultValue)
}

func GetFloat64(key string) float64 {
	return get().GetFloat64(key)
}
