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
//	-auth-region identity provider region
//	-user-pool-id identity provider user pool id
//	-client-id identity provider app client id
//	-issuer issuer URL override (local emulators)
//	-region key-value store region
//	-trends-table trends table name
//	-favorites-table favorites table name
//	-settings-table user settings table name
//	-uploads-bucket avatar bucket name
//	-upload-url-ttl upload credential lifetime (e.g., "300s", "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var authRegion string
	var userPoolID string
	var clientID string
	var issuer string
	var storageRegion string
	var trendsTable string
	var favoritesTable string
	var settingsTable string
	var uploadsBucket string
	var uploadURLTTL time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&authRegion, "auth-region", "", "Identity provider region")
	flag.StringVar(&userPoolID, "user-pool-id", "", "Identity provider user pool id")
	flag.StringVar(&clientID, "client-id", "", "Identity provider app client id")
	flag.StringVar(&issuer, "issuer", "", "Issuer URL override")
	flag.StringVar(&storageRegion, "region", "", "Key-value store region")
	flag.StringVar(&trendsTable, "trends-table", "", "Trends table name")
	flag.StringVar(&favoritesTable, "favorites-table", "", "Favorites table name")
	flag.StringVar(&settingsTable, "settings-table", "", "User settings table name")
	flag.StringVar(&uploadsBucket, "uploads-bucket", "", "Avatar bucket name")
	flag.DurationVar(&uploadURLTTL, "upload-url-ttl", 0, "Upload credential lifetime (e.g., 300s, 5m)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			Address: serverAddress.String(),
		},
		Auth: Auth{
			Region:     authRegion,
			UserPoolID: userPoolID,
			ClientID:   clientID,
			Issuer:     issuer,
		},
		Storage: Storage{
			Region:            storageRegion,
			TrendsTable:       trendsTable,
			FavoritesTable:    favoritesTable,
			UserSettingsTable: settingsTable,
		},
		Uploads: Uploads{
			Bucket: uploadsBucket,
			URLTTL: uploadURLTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so that the
// merge step can fall through to the next configuration source.
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
