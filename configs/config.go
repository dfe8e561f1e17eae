package configs

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// DefaultTemplate .
const DefaultTemplate = `
log_level = "info"

# Redis endpoint used when no [[namespace]] blocks are configured
# (single-ASIC systems). A path starting with "/" is a unix socket.
redis_addr = "127.0.0.1:6379"

# Database indices inside each namespace's redis instance.
asic_db = 1
chassis_app_db = 12

dial_timeout = "5s"
read_timeout = "5s"

# Multi-ASIC systems declare one block per hardware namespace:
# [[namespace]]
# name = "asic0"
# addr = "/var/run/redis0/redis.sock"
`

// Conf .
var Conf = newDefault()

// Namespace is one hardware namespace's state store endpoint.
type Namespace struct {
	Name string `toml:"name"`
	Addr string `toml:"addr"`
}

// Config .
type Config struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	RedisAddr    string `toml:"redis_addr"`
	ASICDB       int    `toml:"asic_db"`
	ChassisAppDB int    `toml:"chassis_app_db"`

	DialTimeout Duration `toml:"dial_timeout"`
	ReadTimeout Duration `toml:"read_timeout"`

	Namespaces []Namespace `toml:"namespace"`
}

func newDefault() Config {
	var conf Config
	if _, err := toml.Decode(DefaultTemplate, &conf); err != nil {
		panic(err)
	}
	return conf
}

// Load merges the given TOML files over the defaults, in order.
func (c *Config) Load(files []string) error {
	for _, path := range files {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return errors.Wrapf(err, "load config %s", path)
		}
	}
	return nil
}

// Dump .
func (c *Config) Dump() (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return "", errors.Wrap(err, "encode config")
	}
	return sb.String(), nil
}
