package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-api-url runtime API URL
//	-a HTTP address in format [host]:[port]; enables the web front end
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-log-file log file used by the terminal UI
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiURL string
	var requestTimeout time.Duration
	var logLevel string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("docker-lab", flag.ContinueOnError)
	fs.StringVar(&apiURL, "api-url", "", "Runtime API URL")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file for the terminal UI")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Runtime: Runtime{
			APIURL: apiURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
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
// An empty host listens on every interface. Hosts other than "localhost" must
// be IP addresses.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
