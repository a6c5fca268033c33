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

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s draft-save server address used by the client
//	-d local SQLite file of the draft queue
//	-c/-config json file path with configs
//	-draft draft id to open
//	-log-file client log file
//	-version application version
//	-request-timeout outbound/inbound request timeout (e.g. "10s")
//	-debounce autosave quiet period (e.g. "1s")
//	-retry-base first retry delay (e.g. "1s")
//	-retry-max retry delay cap (e.g. "30s")
//	-probe-interval connectivity probe interval (e.g. "5s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var draftID string
	var logFile string
	var version string
	var requestTimeout time.Duration
	var debounce, retryBase, retryMax time.Duration
	var probeInterval time.Duration

	fs := flag.NewFlagSet("go-draft-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Draft-save server address")
	fs.StringVar(&databaseDSN, "d", "", "Local draft database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&draftID, "draft", "", "Draft id to open")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&version, "version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&debounce, "debounce", 0, "Autosave quiet period (e.g., 1s)")
	fs.DurationVar(&retryBase, "retry-base", 0, "First retry delay (e.g., 1s)")
	fs.DurationVar(&retryMax, "retry-max", 0, "Retry delay cap (e.g., 30s)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: version,
			DraftID: draftID,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Autosave: Autosave{
			Debounce:  debounce,
			RetryBase: retryBase,
			RetryMax:  retryMax,
		},
		Workers:      Workers{ProbeInterval: probeInterval},
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
