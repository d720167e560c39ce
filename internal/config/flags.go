package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-mongo-uri document store connection string
//	-mongo-database document store database name
//	-session-sign-key session token signing key
//	-session-issuer session token issuer name
//	-session-duration session lifetime (e.g., "720h")
//	-secure-cookies mark the session cookie as Secure
//	-seed-username bootstrap account username
//	-seed-password bootstrap account password
//	-weather-api-key weather provider API key
//	-weather-base-url weather provider base URL
//	-weather-timeout weather provider request timeout (e.g., "15s")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var mongoURI string
	var mongoDatabase string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var secureCookies bool
	var seedUsername string
	var seedPassword string
	var weatherAPIKey string
	var weatherBaseURL string
	var weatherTimeout time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&mongoURI, "mongo-uri", "", "Document store connection string")
	flag.StringVar(&mongoDatabase, "mongo-database", "", "Document store database name")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	flag.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 720h)")
	flag.BoolVar(&secureCookies, "secure-cookies", false, "Mark the session cookie as Secure")
	flag.StringVar(&seedUsername, "seed-username", "", "Bootstrap account username")
	flag.StringVar(&seedPassword, "seed-password", "", "Bootstrap account password")
	flag.StringVar(&weatherAPIKey, "weather-api-key", "", "Weather provider API key")
	flag.StringVar(&weatherBaseURL, "weather-base-url", "", "Weather provider base URL")
	flag.DurationVar(&weatherTimeout, "weather-timeout", 0, "Weather provider request timeout (e.g., 15s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
			SecureCookies:   secureCookies,
			SeedUsername:    seedUsername,
			SeedPassword:    seedPassword,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Weather: Weather{
			APIKey:         weatherAPIKey,
			BaseURL:        weatherBaseURL,
			RequestTimeout: weatherTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
