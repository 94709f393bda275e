// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the env variable that holds the log level.
const EnvLevel = "BREEDCTL_LOG"

// InitLogger sets up Apex with a custom handler writing to stderr and a log
// level from the BREEDCTL_LOG env variable. Unknown levels fall back to ERROR.
func InitLogger() {
	log.SetHandler(&CustomHandler{Writer: os.Stderr})
	log.SetLevel(levelFromEnv())
}

func levelFromEnv() log.Level {
	name := strings.ToUpper(strings.TrimSpace(os.Getenv(EnvLevel)))
	if name == "" {
		return log.ErrorLevel
	}
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.ErrorLevel
	}
	return level
}

// CustomHandler formats log messages as "date time L message key=value".
type CustomHandler struct {
	Writer io.Writer
	now    func() time.Time
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}
	now := time.Now
	if h.now != nil {
		now = h.now
	}

	timestamp := now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	_, err := fmt.Fprintf(w, "%s %.1s %s%s\n", timestamp, level, e.Message, fields.String())
	return err
}
