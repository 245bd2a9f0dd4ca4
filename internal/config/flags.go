// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line
// ([flag.CommandLine], os.Args[1:]). Positional arguments left after the
// flags remain available through [flag.Args].
//
// Flags:
//
//	-root installation root directory
//	-log-level minimum log level
//	-config-file configuration document path
//	-static-dir static asset directory
//	-index index document name
//	-host server bind host
//	-p/-port server port
//	-metrics-address prometheus listener address in format [host]:[port]
//	-read-header-timeout request header timeout (e.g., "10s")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-max-body-bytes configuration update body limit
//	-a server address used by the client in format [host]:[port]
//	-request-timeout client request timeout (e.g., "15s")
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var adapterAddress NetAddress
	var rootDir, logLevel string
	var configFile, staticDir, indexFile string
	var host, metricsAddress string
	var port int
	var readHeaderTimeout, shutdownTimeout, requestTimeout time.Duration
	var maxBodyBytes int64
	var jsonConfigPath string

	fs.StringVar(&rootDir, "root", "", "Installation root directory")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&configFile, "config-file", "", "Configuration document path")
	fs.StringVar(&staticDir, "static-dir", "", "Static asset directory")
	fs.StringVar(&indexFile, "index", "", "Index document name")
	fs.StringVar(&host, "host", "", "Server bind host")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.IntVar(&port, "port", 0, "Server port (alias)")
	fs.StringVar(&metricsAddress, "metrics-address", "", "Metrics listener host:port")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Request header timeout (e.g., 10s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Configuration update body limit in bytes")
	fs.Var(&adapterAddress, "a", "Server net address host:port used by the client")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			RootDir:  rootDir,
			LogLevel: logLevel,
		},
		Storage: Storage{
			ConfigFile: configFile,
			StaticDir:  staticDir,
			IndexFile:  indexFile,
		},
		Server: Server{
			Host:              host,
			Port:              port,
			MetricsAddress:    metricsAddress,
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
			MaxBodyBytes:      maxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be a hostname or an IP address (IPv6 in brackets); the port
// must be in range 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
