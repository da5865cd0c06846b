package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Default header lines for the exported results report.
const (
	DefaultReportTitle    = "HASIL PEMILIHAN KETUA PMR"
	DefaultReportSubtitle = "SMA IT Abu Bakar Boarding School Kulon Progo"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	SessionSecret  string
	BootstrapAdmin string
	ReportTitle    string
	ReportSubtitle string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pmr-election", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token secret (prefer env)")

	// Provisioning and reporting
	fs.StringVar(&cfg.BootstrapAdmin, "bootstrap-admin", "", "Email granted the admin role")
	fs.StringVar(&cfg.ReportTitle, "report-title", "", "Title row of the CSV export")
	fs.StringVar(&cfg.ReportSubtitle, "report-subtitle", "", "Subtitle row of the CSV export")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3419 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.BootstrapAdmin == "" {
		cfg.BootstrapAdmin = os.Getenv("BOOTSTRAP_ADMIN")
	}

	if cfg.ReportTitle == "" {
		cfg.ReportTitle = os.Getenv("REPORT_TITLE")
		if cfg.ReportTitle == "" {
			cfg.ReportTitle = DefaultReportTitle
		}
	}
	if cfg.ReportSubtitle == "" {
		cfg.ReportSubtitle = os.Getenv("REPORT_SUBTITLE")
		if cfg.ReportSubtitle == "" {
			cfg.ReportSubtitle = DefaultReportSubtitle
		}
	}

	return cfg, nil
}
