// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres, redis or memory (default: sqlite)
  - DatabaseURL: sqlite file, postgres DSN or redis URL (default for sqlite: file:luckypicker.db)
  - APIKey: Required on write requests when set (optional)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFile: Rotated log file, in addition to stdout (optional)
  - EnvFile: Dotenv file loaded before reading env (default: .env)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	--api-key    API key
	--log-level  Log level
	--log-file   Log file
	--env-file   Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	API_KEY       → --api-key
	LOG_LEVEL     → --log-level
	LOG_FILE      → --log-file
	ENV_FILE      → --env-file

CLI flags take precedence over environment variables, and the real
environment takes precedence over the env file. A missing env file is not
an error.

# Validation

ParseFlags returns an error when:

  - PORT is not a number
  - DATABASE_TYPE is unknown
  - postgres or redis is selected without a DATABASE_URL
*/
package cliparse
