package resource

import (
	"bytes"
	"github.com/spf13/viper"
	"log"
	"os"
	"regexp"
	"time"
	"todo-api/configs"
)

const defaultPropertiesFile = "configs/application.yml"

var (
	properties *viper.Viper
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// init loads application properties from YAML
func init() {
	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = defaultPropertiesFile
	}
	if err := Init(value); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init reads the properties file at filepath, falling back to the embedded
// defaults when the file does not exist, and resolves ${ENV:default} values.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if os.IsNotExist(err) {
		content, err = configs.Files.ReadFile("application.yml")
	}
	if err != nil {
		return err
	}
	return Load(content)
}

// Load replaces the current properties with the given YAML document.
func Load(content []byte) error {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", raw.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}
	properties = next
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${NAME:default} value; other values are returned untouched
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}
	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

// GetStringOrDefault returns defaultValue when the property is missing or blank.
func GetStringOrDefault(key, defaultValue string) string {
	if value := properties.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
