package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-hash-cost bcrypt cost
//	-backend storage backend (dynamodb, postgres, memory)
//	-d database DSN
//	-dynamodb-region DynamoDB region
//	-dynamodb-endpoint DynamoDB endpoint override
//	-token-info-url identity provider token-info URL
//	-sentry-dsn Sentry DSN
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var logLevel string
	var hashCost int
	var backend string
	var databaseDSN string
	var region, endpoint string
	var tokenInfoURL string
	var sentryDSN string
	var jsonConfigPath string

	fs := flag.NewFlagSet("beyond-catalog", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost")
	fs.StringVar(&backend, "backend", "", "Storage backend: dynamodb, postgres or memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&region, "dynamodb-region", "", "DynamoDB region")
	fs.StringVar(&endpoint, "dynamodb-endpoint", "", "DynamoDB endpoint override")
	fs.StringVar(&tokenInfoURL, "token-info-url", "", "Identity provider token-info URL")
	fs.StringVar(&sentryDSN, "sentry-dsn", "", "Sentry DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:         logLevel,
			PasswordHashCost: hashCost,
		},
		Storage: Storage{
			Backend: backend,
			DynamoDB: DynamoDB{
				Region:   region,
				Endpoint: endpoint,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			TokenInfoURL: tokenInfoURL,
		},
		Sentry: Sentry{
			DSN: sentryDSN,
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

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
