package main

import (
	"io"
	"log"
)

// Logger is the reporting surface used by the CLI.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l *log.Logger
}

func newLogger(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "huff: ", 0)}
}

func (l *stdLogger) Infof(format string, v ...interface{})  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...interface{}) { l.l.Printf("[ERROR] "+format, v...) }
