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

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
// Unknown flags produce an error instead of exiting the process.
//
// Flags:
//
//	-api backend base URL (e.g. http://localhost:8080/api)
//	-timeout outbound request timeout (e.g. "15s")
//	-driver local storage driver (sqlite3 | pgx)
//	-d local storage DSN
//	-lang initial UI language (en | fr)
//	-theme initial UI theme (light | dark)
//	-log-file client log file path
//	-a stub API listen address in format [host]:[port]
//	-token-sign-key stub API token signing key
//	-token-duration stub API token lifetime (e.g. "24h")
//	-admin-emails comma separated stub API admin accounts
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("exo-explorer", flag.ContinueOnError)

	var serverAddress NetAddress
	var apiAddress string
	var requestTimeout time.Duration
	var dbDriver, databaseDSN string
	var language, theme, logFile string
	var tokenSignKey string
	var tokenDuration time.Duration
	var adminEmails string
	var jsonConfigPath string

	fs.StringVar(&apiAddress, "api", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&dbDriver, "driver", "", "Local storage driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Local storage DSN")
	fs.StringVar(&language, "lang", "", "UI language (en, fr)")
	fs.StringVar(&theme, "theme", "", "UI theme (light, dark)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.Var(&serverAddress, "a", "Stub API net address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Stub API token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Stub API token duration (e.g., 24h)")
	fs.StringVar(&adminEmails, "admin-emails", "", "Stub API admin emails, comma separated")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Language: language,
			Theme:    theme,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			AdminEmails:   splitList(adminEmails),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
