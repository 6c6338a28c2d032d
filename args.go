package main

import (
	"flag"
	"path/filepath"

	"github.com/pkg/errors"
)

// Args are command line arguments. The core server has no CLI surface of
// its own (spec.md §6); this is the launcher collaborator that instantiates
// and runs it.
type Args struct {
	ConfigFile string
	ListenPort string
	ServerName string
}

func getArgs() (*Args, error) {
	configFile := flag.String("conf", "", "Optional configuration file.")
	port := flag.String("port", "", "Listen port. Overrides the config file and the 6667 default.")
	serverName := flag.String("server-name", "", "Server name. Overrides the config file and the miniircd default.")

	flag.Parse()

	configPath := ""
	if *configFile != "" {
		p, err := filepath.Abs(*configFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to determine path to the configuration file")
		}
		configPath = p
	}

	return &Args{
		ConfigFile: configPath,
		ListenPort: *port,
		ServerName: *serverName,
	}, nil
}
