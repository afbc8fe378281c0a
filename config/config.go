package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	coretypes "github.com/projecteru2/core/types"
	"github.com/vmware/govmomi/vim25/soap"
)

// DefaultPort is the HTTPS port of the vSphere SDK endpoint.
const DefaultPort = 443

// ErrMissing is returned by Validate when a required setting is empty.
var ErrMissing = errors.New("missing required setting")

// Config holds the connection and logging settings shared by every report.
type Config struct {
	// Host is the vCenter or ESXi address, without scheme or port.
	// Env: VMREPORT_HOST. Required, no default.
	Host string `json:"host" mapstructure:"host"`
	// Port is the SDK port. Default: 443.
	Port int `json:"port" mapstructure:"port"`
	// User is the login name, e.g. administrator@vsphere.local.
	// Env: VMREPORT_USER. Required, no default.
	User string `json:"user" mapstructure:"user"`
	// Password for User. Prompted on the terminal when empty.
	// Env: VMREPORT_PASSWORD.
	Password string `json:"-" mapstructure:"password"`
	// Insecure skips server certificate verification.
	Insecure bool `json:"disable_ssl_verification" mapstructure:"disable_ssl_verification"`
	// CAFile is a PEM bundle trusted in addition to the system roots.
	// Ignored when Insecure is set.
	CAFile string `json:"ca_file" mapstructure:"ca_file"`
	// Log configuration, uses eru core's ServerLogConfig.
	Log *coretypes.ServerLogConfig `json:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config with every optional field at its default.
// Host, User and Password are intentionally left empty.
func DefaultConfig() *Config {
	return &Config{
		Port: DefaultPort,
		Log: &coretypes.ServerLogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the settings needed to open a session are present.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host", ErrMissing)
	}
	if c.User == "" {
		return fmt.Errorf("%w: user", ErrMissing)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// Address returns host:port.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// SDKURL returns the https://host:port/sdk endpoint with the credentials attached.
func (c *Config) SDKURL() (*url.URL, error) {
	u, err := soap.ParseURL(c.Address())
	if err != nil {
		return nil, fmt.Errorf("parse sdk url %s: %w", c.Address(), err)
	}
	u.User = url.UserPassword(c.User, c.Password)
	return u, nil
}
