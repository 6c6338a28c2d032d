package main

import (
	"log"
)

// main is the launcher collaborator spec.md §6 describes: it has no
// protocol logic of its own, only wiring (args → config → server).
func main() {
	log.SetFlags(0)

	args, err := getArgs()
	if err != nil {
		log.Fatal(err)
	}

	config := defaultConfig()
	config, err = loadConfigFile(config, args.ConfigFile)
	if err != nil {
		log.Fatal(err)
	}

	if args.ListenPort != "" {
		config.ListenPort = args.ListenPort
	}
	if args.ServerName != "" {
		config.ServerName = args.ServerName
	}

	server := newServer(config)
	if err := server.start(); err != nil {
		log.Fatal(err)
	}

	log.Printf("%s shut down cleanly.", config.ServerName)
}
