package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"

	"github.com/M0r13n/battleships/pkg/game"
)

// Transport names accepted in the config file and on the command line.
const (
	TransportTCP       = "tcp"
	TransportWebsocket = "websocket"
)

// Config carries everything the battleships command needs to start up.
// Whether this side listens or connects is decided on the command line,
// not here, so one file can serve both players.
type Config struct {
	Host      string   `mapstructure:"host"`
	Port      int      `mapstructure:"port"`
	Transport string   `mapstructure:"transport"`
	LogFile   string   `mapstructure:"log"`
	Fleet     []string `mapstructure:"fleet"`
}

// Default is the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Host:      "localhost",
		Port:      5000,
		Transport: TransportTCP,
		LogFile:   "log.log",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not
// an error: the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Decode through a map so the fields stay loosely typed: a quoted
	// port or a bare number both work.
	var fields map[string]interface{}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(fields); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// Address joins host and port into a dialable address.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// FleetClasses resolves the configured fleet names against the ship
// catalogue, falling back to the default fleet when none are named.
// Order is preserved: ships are placed in the order listed.
func (c Config) FleetClasses() ([]game.ShipClass, error) {
	if len(c.Fleet) == 0 {
		return game.DefaultFleet(), nil
	}
	fleet := make([]game.ShipClass, 0, len(c.Fleet))
	for _, name := range c.Fleet {
		class, err := game.ParseShipClass(name)
		if err != nil {
			return nil, fmt.Errorf("fleet: %w", err)
		}
		fleet = append(fleet, class)
	}
	return fleet, nil
}
