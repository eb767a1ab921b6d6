// Package devbelt wires the shared dependencies of all tools:
// configuration, logging, observability, the HTTP API and the CLI.
package devbelt

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/iseif/devbelt/secret"
)

// Config is a structure used for service configuration.
// It is intended to be mapped by viper.
type Config struct {
	OrganisationName string `mapstructure:"organisation_name"`
	ApplicationName  string `mapstructure:"application_name"`
	InstanceName     string `mapstructure:"instance_name"`

	Environment Environment `mapstructure:"environment"`

	HTTP   HTTP   `mapstructure:"http"`
	OTEL   OTEL   `mapstructure:"otel"`
	Log    Log    `mapstructure:"log"`
	IPInfo IPInfo `mapstructure:"ipinfo"`
	Tools  Tools  `mapstructure:"tools"`
}

const (
	LocalEnv       Environment = "local"
	TestEnv        Environment = "test"
	DevelopmentEnv Environment = "dev"
	ProductionEnv  Environment = "prod"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv, DevelopmentEnv, ProductionEnv}
}

type Environment string

type (
	HTTP struct {
		Port                  int  `mapstructure:"port"                    json:"port"`
		StatusEndpointEnabled bool `mapstructure:"status_endpoint_enabled" json:"-"`
		StatusEndpointPort    int  `mapstructure:"status_endpoint_port"    json:"-"`
	}

	// OTEL configures the trace exporter. If Host is empty, traces are not exported.
	OTEL struct {
		Host     string `mapstructure:"host"     json:"host"`
		Port     int    `mapstructure:"port"     json:"port"`
		Hostname string `mapstructure:"hostname" json:"hostname"`
	}

	Log struct {
		Level   string `mapstructure:"level"    json:"level"`
		LokiURL string `mapstructure:"loki_url" json:"lokiURL"`
	}

	// IPInfo configures the services used to look up public ip addresses and their geolocation.
	IPInfo struct {
		EchoURL      string        `mapstructure:"echo_url"       json:"echoURL"`
		Echo6URL     string        `mapstructure:"echo6_url"      json:"echo6URL"`
		GeoURL       string        `mapstructure:"geo_url"        json:"geoURL"`
		APIKey       secret.Secret `mapstructure:"api_key,squash" json:"-"`
		Timeout      time.Duration `mapstructure:"timeout"        json:"timeout"`
		Retries      int           `mapstructure:"retries"        json:"retries"`
		CacheSize    int           `mapstructure:"cache_size"     json:"cacheSize"`
		DatabasePath string        `mapstructure:"database_path"  json:"databasePath"`
	}

	Tools struct {
		HexdumpBytesPerRow int `mapstructure:"hexdump_bytes_per_row" json:"hexdumpBytesPerRow"`
		MaxBatch           int `mapstructure:"max_batch"             json:"maxBatch"`
	}
)

// DefaultViper returns a new viper instance with all default values
// from Config set. Every value can be overwritten by an environment variable
// prefixed with DEVBELT_, e.g. DEVBELT_HTTP_PORT.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetEnvPrefix("devbelt")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("organisation_name", "")
	vip.SetDefault("application_name", "devbelt")
	vip.SetDefault("instance_name", "")

	vip.SetDefault("environment", "local")

	vip.SetDefault("http.port", 8080)
	vip.SetDefault("http.status_endpoint_enabled", true)
	vip.SetDefault("http.status_endpoint_port", 2223)

	vip.SetDefault("otel.host", "")
	vip.SetDefault("otel.port", 4317)
	vip.SetDefault("otel.hostname", "")

	vip.SetDefault("log.level", "info")
	vip.SetDefault("log.loki_url", "")

	vip.SetDefault("ipinfo.echo_url", "https://api.ipify.org?format=json")
	vip.SetDefault("ipinfo.echo6_url", "https://api6.ipify.org?format=json")
	vip.SetDefault("ipinfo.geo_url", "https://ipapi.co/%s/json/")
	vip.SetDefault("ipinfo.api_key", "")
	vip.SetDefault("ipinfo.timeout", 5*time.Second)
	vip.SetDefault("ipinfo.retries", 0)
	vip.SetDefault("ipinfo.cache_size", 256)
	vip.SetDefault("ipinfo.database_path", "")

	vip.SetDefault("tools.hexdump_bytes_per_row", 16)
	vip.SetDefault("tools.max_batch", 100)

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// The only purpose is to overwrite the Unmarshal method,
// so that secret.Secret data types are decoded without the caller having to think about it.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, _ ...viper.DecoderConfigOption) error {
	err := vip.Viper.Unmarshal(rawVal, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		allowedEnvironmentHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err) //nolint:errorlint,lll // prevent err in api
	}

	config, setBack := findConfig(rawVal)
	if config == nil {
		return fmt.Errorf("%w: could not cast to devbelt.Config", errConfigLoadFailed)
	}

	err = vip.Viper.UnmarshalKey(
		"ipinfo.api_key",
		&config.IPInfo.APIKey,
		viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()),
	)
	if err != nil {
		return fmt.Errorf("%w: could not decode secret: %v", errConfigLoadFailed, err) //nolint:errorlint,lll // prevent err in api
	}

	setBack(config)

	return nil
}

// findConfig returns the Config in rawVal, which is either a *Config itself or
// a pointer to a struct embedding Config. The returned func writes a changed Config back into rawVal.
func findConfig(rawVal any) (*Config, func(*Config)) {
	if config, ok := rawVal.(*Config); ok {
		return config, func(*Config) {}
	}

	val := reflect.Indirect(reflect.ValueOf(rawVal))
	if val.Kind() != reflect.Struct {
		return nil, nil
	}

	for i := range val.NumField() {
		if !val.Type().Field(i).IsExported() {
			continue
		}

		field := val.Field(i)

		conf, ok := field.Interface().(Config)
		if !ok {
			continue
		}

		return &conf, func(c *Config) { field.Set(reflect.ValueOf(*c)) }
	}

	return nil, nil
}

func allowedEnvironmentHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(Environment("")) {
			return data, nil
		}

		str, _ := data.(string)

		env := Environments()
		if slices.Contains(env, Environment(str)) {
			return data, nil
		}

		names := make([]string, 0, len(env))
		for _, e := range env {
			names = append(names, string(e))
		}

		return data, fmt.Errorf("value is not allowed, use one of: %s", strings.Join(names, ", ")) //nolint:err113 // accept dynamic error
	}
}
