package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Backend struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// Balancer is the JSON file read by the balancer binary, e.g.
//
//	{"healthCheckInterval": "5s", "listenPort": ":9095",
//	 "servers": [{"name": "server 1", "url": "http://localhost:9090"}]}
type Balancer struct {
	HealthCheckInterval time.Duration `mapstructure:"healthCheckInterval"`
	ListenPort          string        `mapstructure:"listenPort"`
	Servers             []Backend     `mapstructure:"servers"`
}

func LoadBalancer(path string) (*Balancer, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read balancer config %s: %w", path, err)
	}

	var cfg Balancer
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode balancer config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (b *Balancer) Validate() error {
	if b.HealthCheckInterval <= 0 {
		return errors.New("healthCheckInterval must be a positive duration")
	}
	if b.ListenPort == "" {
		return errors.New("listenPort is required")
	}
	if len(b.Servers) == 0 {
		return errors.New("at least one server is required")
	}

	for i, s := range b.Servers {
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("servers[%d] url: %w", i, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("servers[%d] url %q must be absolute", i, s.URL)
		}
	}

	return nil
}
