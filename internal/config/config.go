package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultMessage is the banner returned by GET /.
const DefaultMessage = "VIT Full Stack API by Ansh Sharma 22BCE1338 - Use POST /bfhl to process data"

// Identity holds the static fields echoed in every successful response.
type Identity struct {
	UserID     string `yaml:"user_id"`
	Email      string `yaml:"email"`
	RollNumber string `yaml:"roll_number"`
	Message    string `yaml:"message"` // root route banner
}

// Cfg holds all runtime configuration.
type Cfg struct {
	Identity Identity

	// Server
	ListenAddr   string // e.g. :3000
	CORSOrigin   string // Access-Control-Allow-Origin value
	MaxBodyBytes int64  // POST body limit

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
}

// Load reads .env (if present), the optional YAML identity file named by
// BFHL_CONFIG, then environment variables, and returns Cfg.
func Load() (*Cfg, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	id := Identity{
		UserID:     "ansh_sharma_22bce1338",
		Email:      "ansh.sharma@example.com",
		RollNumber: "22BCE1338",
		Message:    DefaultMessage,
	}
	if path := strings.TrimSpace(os.Getenv("BFHL_CONFIG")); path != "" {
		if err := loadIdentityFile(path, &id); err != nil {
			return nil, err
		}
	}
	envOverride(&id.UserID, "BFHL_USER_ID")
	envOverride(&id.Email, "BFHL_EMAIL")
	envOverride(&id.RollNumber, "BFHL_ROLL_NUMBER")
	envOverride(&id.Message, "BFHL_MESSAGE")

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3000"
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return nil, fmt.Errorf("config: invalid PORT %q", port)
	}

	corsOrigin := strings.TrimSpace(os.Getenv("CORS_ORIGIN"))
	if corsOrigin == "" {
		corsOrigin = "*"
	}

	maxBody := int64(100 << 10)
	if raw := strings.TrimSpace(os.Getenv("MAX_BODY_BYTES")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: invalid MAX_BODY_BYTES %q", raw)
		}
		maxBody = n
	}

	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT")))
	switch format {
	case "":
		format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("config: invalid LOG_FORMAT %q (want text or json)", format)
	}

	return &Cfg{
		Identity:     id,
		ListenAddr:   ":" + port,
		CORSOrigin:   corsOrigin,
		MaxBodyBytes: maxBody,
		LogLevel:     level,
		LogFormat:    format,
	}, nil
}

// NewLogger builds the process logger described by the logging fields.
func (c *Cfg) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadIdentityFile overlays non-empty YAML fields onto id.
func loadIdentityFile(path string, id *Identity) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var file Identity
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	overlay(&id.UserID, file.UserID)
	overlay(&id.Email, file.Email)
	overlay(&id.RollNumber, file.RollNumber)
	overlay(&id.Message, file.Message)
	return nil
}

func envOverride(dst *string, key string) {
	overlay(dst, os.Getenv(key))
}

func overlay(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func parseLevel(raw string) (slog.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("config: invalid LOG_LEVEL %q", raw)
	}
	return l, nil
}
