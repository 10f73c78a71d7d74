package textapi

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apierrors "github.com/textkit/textapi/errors"
)

// Names of service properties, without the service name prefix.
const (
	PropURL         = "URL"
	PropAuthType    = "AUTH_TYPE"
	PropUsername    = "USERNAME"
	PropPassword    = "PASSWORD"
	PropBearerToken = "BEARER_TOKEN"
	PropAPIKey      = "APIKEY"
)

var propNames = []string{PropURL, PropAuthType, PropUsername, PropPassword, PropBearerToken, PropAPIKey}

const (
	credentialsFileEnv     = "IBM_CREDENTIALS_FILE"
	defaultCredentialsFile = "ibm-credentials.env"
)

// GetServiceProperties reads properties of the service from the
// credentials file and the environment. Environment variables win.
// For service "natural_language_classifier" the URL is read from
// NATURAL_LANGUAGE_CLASSIFIER_URL and so on. Keys of the result are
// Prop* constants; properties which are not set are omitted.
func GetServiceProperties(serviceName string) (map[string]string, error) {
	if serviceName == "" {
		return nil, apierrors.InvalidArgument("service name is empty")
	}
	prefix := strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_")) + "_"

	v := viper.New()
	v.AutomaticEnv()

	if file := findCredentialsFile(); file != "" {
		fromFile, err := godotenv.Read(file)
		if err != nil {
			return nil, apierrors.InvalidArgument("failed to read credentials file %s: %w", file, err)
		}
		for k, value := range fromFile {
			if strings.HasPrefix(k, prefix) {
				v.SetDefault(k, value)
			}
		}
	}

	props := make(map[string]string)
	for _, name := range propNames {
		if value := v.GetString(prefix + name); value != "" {
			props[name] = value
		}
	}
	return props, nil
}

func findCredentialsFile() string {
	if file := os.Getenv(credentialsFileEnv); file != "" {
		return file
	}
	candidates := []string{defaultCredentialsFile}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, defaultCredentialsFile))
	}
	for _, file := range candidates {
		if _, err := os.Stat(file); err == nil {
			return file
		}
	}
	return ""
}
