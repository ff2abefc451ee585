package config

import (
	"os"
	"strings"
)

const defaultChannelID = "LedgerOps"
const defaultChannelKey = "LedgerOpsKey001"
const defaultHTTPAddr = ":8080"
const defaultMigrationsDir = "migrations"

type Config struct {
	// DatabaseDSN points at the run-archive database. Empty disables
	// archival entirely; the engine itself is in-memory.
	DatabaseDSN   string
	MigrationsDir string
	ChannelID     string
	ChannelKey    string
	HTTPAddr      string
}

func Load() (Config, error) {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if dsn != "" {
		dsn = normalizeConnectionString(dsn)
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = defaultMigrationsDir
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	return Config{
		DatabaseDSN:   dsn,
		MigrationsDir: migrationsDir,
		ChannelID:     channelID,
		ChannelKey:    channelKey,
		HTTPAddr:      httpAddr,
	}, nil
}

// normalizeConnectionString accepts both libpq keyword DSNs and
// semicolon-separated connection strings, returning the libpq form.
func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
