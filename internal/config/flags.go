// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagAddress        = "address"
	FlagServer         = "server"
	FlagDSN            = "dsn"
	FlagOutputDir      = "output-dir"
	FlagTempDir        = "temp-dir"
	FlagPlayer         = "player"
	FlagRequestTimeout = "request-timeout"
	FlagLogFile        = "log-file"
	FlagConfig         = "config"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags adds the configuration flags to fs.
//
// Flags:
//
//	-a/--address          HTTP listen address in format [host]:[port]
//	--server              remote ed3 server URL
//	-d/--dsn              catalog DSN (SQLite path or postgres:// URL)
//	-o/--output-dir       directory for created containers
//	--temp-dir            directory for extracted payloads
//	--player              media player command
//	--request-timeout     request timeout (e.g., "30s", "1m")
//	--log-file            log file for interactive commands
//	-c/--config           json file path with configs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.VarP(&NetAddress{}, FlagAddress, "a", "Net address host:port for ed3 serve")
	fs.String(FlagServer, "", "Remote ed3 server URL (e.g. http://localhost:8080)")
	fs.StringP(FlagDSN, "d", "", "Catalog DSN (SQLite file or postgres:// URL)")
	fs.StringP(FlagOutputDir, "o", "", "Directory for created .ed3 files")
	fs.String(FlagTempDir, "", "Directory for extracted audio")
	fs.String(FlagPlayer, "", "Media player command")
	fs.Duration(FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.String(FlagLogFile, "", "Log file path")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
}

// parseFlags reads the flags the user set explicitly. Unset flags stay zero so
// they do not shadow lower-priority sources.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case FlagAddress:
			cfg.Server.HTTPAddress = f.Value.String()
		case FlagServer:
			cfg.Adapter.HTTPAddress = f.Value.String()
		case FlagDSN:
			cfg.Storage.DB.DSN = f.Value.String()
		case FlagOutputDir:
			cfg.Storage.Files.OutputDir = f.Value.String()
		case FlagTempDir:
			cfg.Storage.Files.TempDir = f.Value.String()
		case FlagPlayer:
			cfg.Player.Command = f.Value.String()
		case FlagLogFile:
			cfg.App.LogFile = f.Value.String()
		case FlagConfig:
			cfg.JSONFilePath = f.Value.String()
		case FlagRequestTimeout:
			var d time.Duration
			d, err = time.ParseDuration(f.Value.String())
			if err != nil {
				err = fmt.Errorf("error parsing --%s: %w", FlagRequestTimeout, err)
				return
			}
			cfg.Server.RequestTimeout = d
			cfg.Adapter.RequestTimeout = d
		}
	})
	if err != nil {
		return nil, err
	}

	return cfg, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
