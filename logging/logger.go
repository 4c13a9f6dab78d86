package logging

import (
	log "github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger. Production gets JSON lines for
// log shippers; everything else keeps the default text formatter.
func Setup(level string, production bool) {
	if production {
		log.SetFormatter(&log.JSONFormatter{})
	}
	log.SetLevel(GetLevel(level))
}

// GetLevel parses a logrus level name, falling back to info.
func GetLevel(level string) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}
