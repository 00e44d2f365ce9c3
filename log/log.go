// Package log holds the process-wide loggers. Enable debug output by setting
// RND_DEBUG=1; it goes to a file in the temp directory so it never mixes with
// the window's stderr.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(os.Stderr, "INFO:", log.Ldate|log.Ltime)
	WarningLog = log.New(os.Stderr, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog   = log.New(os.Stderr, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)

	DebugEnabled bool
	DebugLog     = log.New(io.Discard, "", 0)
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "rnd-debug.log")

// Initialize points the info, warning and error loggers at w. A nil writer
// keeps stderr.
func Initialize(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	InfoLog.SetOutput(w)
	WarningLog.SetOutput(w)
	ErrorLog.SetOutput(w)
}

// InitDebug enables debug logging when RND_DEBUG=1 is set or force is true.
func InitDebug(force bool) {
	if !force && os.Getenv("RND_DEBUG") != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %v", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f
	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file, if one is open.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	_ = debugLogFile.Close()
	debugLogFile = nil
	DebugEnabled = false
	DebugLog = log.New(io.Discard, "", 0)
	fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
}

// Debug logs a message when debug mode is on.
func Debug(format string, v ...any) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}
