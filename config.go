package main

import (
	"strconv"

	"github.com/horgh/config"
	"github.com/pkg/errors"
)

// Config holds the server's configuration. None of it is required: every
// field has a built-in default matching spec.md, and an optional override
// file only ever overrides a subset of them. miniircd persists nothing.
type Config struct {
	ServerName  string
	ListenHost  string
	ListenPort  string
	Version     string
	CreatedDate string

	// MOTD is the single line sent as the body of RPL_MOTD (372). The
	// surrounding RPL_MOTDSTART/RPL_ENDOFMOTD framing text is fixed.
	MOTD string
}

// defaultConfig returns the built-in configuration spec.md requires: server
// identity "miniircd", port 6667, all interfaces.
func defaultConfig() Config {
	return Config{
		ServerName:  "miniircd",
		ListenHost:  "",
		ListenPort:  "6667",
		Version:     "miniircd-0",
		CreatedDate: "unknown",
		MOTD:        "Welcome to the mini IRC server!",
	}
}

// loadConfigFile overrides c's fields with any keys present in file. Unknown
// keys are ignored; missing keys keep their built-in default. This is the
// only place a third-party config format is involved, and it is optional:
// an absent or empty file changes nothing.
func loadConfigFile(c Config, file string) (Config, error) {
	if file == "" {
		return c, nil
	}

	configMap, err := config.ReadStringMap(file)
	if err != nil {
		return c, errors.Wrap(err, "unable to read configuration file")
	}

	if v, ok := configMap["server-name"]; ok && v != "" {
		c.ServerName = v
	}
	if v, ok := configMap["listen-host"]; ok {
		c.ListenHost = v
	}
	if v, ok := configMap["listen-port"]; ok && v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return c, errors.Wrapf(err, "listen-port %q is not numeric", v)
		}
		c.ListenPort = v
	}
	if v, ok := configMap["version"]; ok && v != "" {
		c.Version = v
	}
	if v, ok := configMap["created-date"]; ok && v != "" {
		c.CreatedDate = v
	}
	if v, ok := configMap["motd"]; ok && v != "" {
		c.MOTD = v
	}

	return c, nil
}
