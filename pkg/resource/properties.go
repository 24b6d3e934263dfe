package resource

import (
	"bytes"
	"os"
	"regexp"
	"time"

	"go-weather/configs"
	"go-weather/pkg/log"

	"github.com/spf13/viper"
)

var (
	v          = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML
func init() {
	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	Init(value)
}

// Init reads the properties file at filepath. When the file does not exist the
// embedded application.yml is used instead.
func Init(filepath string) {
	v = viper.New()
	v.SetConfigType("yml")

	if _, err := os.Stat(filepath); err == nil {
		v.SetConfigFile(filepath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("Fail to read properties: %v", err)
		}
	} else if err := v.ReadConfig(bytes.NewReader(configs.ApplicationYAML)); err != nil {
		log.Fatalf("Fail to read embedded properties: %v", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}
}

// parsePropertiesMap reads recursively the YAML file, resolving ${ENV:default} placeholders
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch val := value.(type) {
		case string:
			if envPattern.MatchString(val) {
				result[fullKey] = resolveEnvVariable(val)
			}
		case map[string]any:
			parsePropertiesMap(fullKey, val, result)
		}
	}
}

// resolveEnvVariable replaces every ${ENV:default} occurrence in value
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

// UnmarshalKey decodes the value stored under key into out.
func UnmarshalKey(key string, out any) error {
	return v.UnmarshalKey(key, out)
}

func IsSet(key string) bool {
	return v.IsSet(key)
}

func Get(key string) any {
	return v.Get(key)
}

func GetString(key string) string {
	return v.GetString(key)
}

func GetBool(key string) bool {
	return v.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return v.GetDuration(key)
}

func GetInt(key string) int {
	return v.GetInt(key)
}

func GetFloat64(key string) float64 {
	return v.GetFloat64(key)
}
