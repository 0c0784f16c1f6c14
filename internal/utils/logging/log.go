package logging

import (
	"log"
	"os"
	"regexp"
	"time"

	"autostepper/internal/domain/consts"
)

var (
	loggable bool
	logger   *log.Logger
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file.
func SetupLogging(logFilePath string) error {
	f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return err
	}

	logger = log.New(f, "", log.LstdFlags)
	loggable = true

	logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// writeLog writes a message to the log file. Callers hold the package mutex.
func writeLog(msg string) {
	if loggable {
		logger.Print(stripAnsiCodes(msg))
	}
}

// stripAnsiCodes removes ANSI escape codes from a string
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
