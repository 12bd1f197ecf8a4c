package main

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func defaultWorkers() int {
	raw := GetEnv("OCOL2D_WORKERS", "1")
	workers, err := strconv.Atoi(raw)
	if err != nil || workers < 1 {
		logger.Warn("ignoring invalid OCOL2D_WORKERS", "value", raw)
		return 1
	}
	return workers
}
