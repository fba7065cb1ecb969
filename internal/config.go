package internal

import "time"

// Config is shared by the auxiliary binaries (viewer). The keeper daemon
// carries its own config in cmd.
type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	DebugPort      int           `env:"DEBUG_PORT,default=8089"`
	SearchLimit    int           `env:"SEARCH_LIMIT,default=10"`
	GCInterval     time.Duration `env:"GC_INTERVAL,default=5m"`
}
