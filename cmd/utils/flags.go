package utils

import (
	"gopkg.in/urfave/cli.v1"
)

var (
	// Config settings
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Json configuration file",
	}

	// Search settings
	BaseFlag = cli.StringFlag{
		Name:  "base",
		Usage: "Base string the generated suffix is appended to",
	}
	DifficultyFlag = cli.UintFlag{
		Name:  "difficulty",
		Usage: "Required number of leading zero hex digits in the SHA-1 digest",
	}
	WorkersFlag = cli.UintFlag{
		Name:  "workers",
		Usage: "Number of parallel search workers (default = logical CPU count)",
	}

	// Log
	LogLvlFlag = cli.StringFlag{
		Name:  "loglvl",
		Usage: "Logging level (debug|info|warn|error)",
	}
	LogDirFlag = cli.StringFlag{
		Name:  "logdir",
		Usage: "Directory for rotated log files (default = stderr only)",
	}

	// Stat
	PProfEnabledFlag = cli.BoolFlag{
		Name:  "pprof",
		Usage: "Enable the pprof HTTP server",
	}
	PProfPortFlag = cli.UintFlag{
		Name:  "pprofport",
		Usage: "pprof HTTP server listening port",
	}

	// Metrics
	MetricsEnabledFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Enable periodic dumps of the search metrics",
	}

	// Simulator settings
	GamesFlag = cli.Uint64Flag{
		Name:  "games",
		Usage: "Number of games to simulate",
	}
	FruitsFlag = cli.UintFlag{
		Name:  "fruits",
		Usage: "Fruit per pile at game start",
	}
	RavensFlag = cli.UintFlag{
		Name:  "ravens",
		Usage: "Length of the raven track",
	}
)

// MergeFlags flattens the grouped flag variables into one slice for the
// cli app.
func MergeFlags(flagsSet ...[]cli.Flag) []cli.Flag {
	var merged []cli.Flag
	for _, flags := range flagsSet {
		merged = append(merged, flags...)
	}
	return merged
}
