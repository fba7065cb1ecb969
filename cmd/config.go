package main

import "time"

type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	DebugPort      int           `env:"DEBUG_PORT,default=8089"`
	GCInterval     time.Duration `env:"GC_INTERVAL,default=5m"`
}
