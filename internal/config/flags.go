package config

import (
	"errors"
	"flag"
	"io"
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

// parseFlags parses configuration flags from args on a private flag set, so
// the server and client binaries and tests can call it repeatedly.
//
// Flags:
//
//	-a http server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (postgres:// URL or SQLite file path)
//	-idempotency-path bolt file for idempotent create
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-annual-leave-days yearly leave allowance
//	-strict-date-range reject end dates before start dates
//	-log-level zerolog level name
//	-server-url base URL the client talks to
//	-refresh-interval client refresh interval (e.g., "30s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("leave-tracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var idempotencyPath string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var annualLeaveDays int
	var strictDateRange bool
	var logLevel string
	var serverURL string
	var refreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&idempotencyPath, "idempotency-path", "", "Idempotency store file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&annualLeaveDays, "annual-leave-days", 0, "Yearly leave allowance in days")
	fs.BoolVar(&strictDateRange, "strict-date-range", false, "Reject end dates before start dates")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&serverURL, "server-url", "", "Leave server base URL")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Client refresh interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(errors.New("error parsing flags"), err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:        logLevel,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			AnnualLeaveDays: annualLeaveDays,
			StrictDateRange: strictDateRange,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			IdempotencyPath: idempotencyPath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface; other hosts must be "localhost" or an IP.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
