package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server *Server `mapstructure:"server"`
	Log    *Log    `mapstructure:"log"`
}

// LoadConfig reads an optional .env file from dir and then the process
// environment. Keys map to nested fields by replacing "." with "_", so
// SERVER_READ_TIMEOUT fills Server.ReadTimeout.
func LoadConfig(dir string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{Server: &Server{}, Log: &Log{}}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// bindValues registers every mapstructure key with its `default` tag so
// AutomaticEnv can see it during Unmarshal.
func bindValues(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			bindValues(v, ft, key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
