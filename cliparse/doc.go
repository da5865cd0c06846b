// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3419)
  - DatabaseURL: PostgreSQL or SQLite connection string (required)
  - DatabaseType: "postgres" or "sqlite" (default: sqlite)
  - SessionSecret: Secret for signing session tokens (required)
  - BootstrapAdmin: Email granted the admin role at provisioning time
  - ReportTitle, ReportSubtitle: Header rows of the CSV export

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-session-secret   Session token secret
	-bootstrap-admin  Admin account email
	-report-title     CSV export title row
	-report-subtitle  CSV export subtitle row

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	SESSION_SECRET  → -session-secret
	BOOTSTRAP_ADMIN → -bootstrap-admin
	REPORT_TITLE    → -report-title
	REPORT_SUBTITLE → -report-subtitle

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SESSION_SECRET must be provided

The report header rows default to the PMR election title when unset.
*/
package cliparse
