// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - NationalDataPath: National CSV (default: data/us.csv)
  - StatesDataPath: Per-state CSV (default: data/us-states.csv)
  - StaticDir: Directory served under /static/ (optional)
  - AllowedOrigin: CORS origin (optional, echoes the request origin when empty)
  - LogLevel: debug, info, warn or error (default: info)

# Sources

Values are resolved in this order, first match wins:

 1. CLI flags
 2. Environment variables
 3. A dotenv file (-env-file, default .env; a missing default file is ignored)
 4. Defaults

	-p            PORT
	-national     NATIONAL_DATA_PATH
	-states       STATES_DATA_PATH
	-static       STATIC_DIR
	-cors-origin  CORS_ORIGIN
	-log-level    LOG_LEVEL
*/
package cliparse
