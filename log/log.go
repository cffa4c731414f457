// Package log provides a thread-safe, structured logging infrastructure with filesystem-based persistence.
//
// Verbosity follows a four-level policy: disabled, essential, standard and
// extended. Every line is prefixed with the addon name and version so host
// log files interleaving many addons stay attributable.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Level is the addon-facing verbosity policy.
type Level int

const (
	LevelDisabled Level = iota
	LevelEssential
	LevelStandard
	LevelExtended
)

// ParseLevel maps a policy name to its Level. Unknown names yield LevelStandard.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "disabled", "off":
		return LevelDisabled
	case "essential":
		return LevelEssential
	case "extended", "verbose":
		return LevelExtended
	default:
		return LevelStandard
	}
}

var level = LevelStandard

// Setup initializes the logging subsystem, including file handles, formatting, and verbosity based on global configuration.
// Inoperative state: If logging is disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	level = ParseLevel(viper.GetString(key.LogsLevel))
	if level == LevelDisabled {
		return nil
	}

	if !viper.GetBool(key.LogsWrite) {
		logrus.SetOutput(os.Stderr)
	} else {
		dir := where.Logs()
		if dir == "" {
			return errors.New("log directory path is empty")
		}

		filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
		path := filepath.Join(dir, filename)

		if exists := lo.Must(filesystem.API().Exists(path)); !exists {
			lo.Must(filesystem.API().Create(path))
		}

		f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logrus.SetOutput(f)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch level {
	case LevelEssential:
		logrus.SetLevel(logrus.WarnLevel)
	case LevelExtended:
		logrus.SetLevel(logrus.TraceLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
	return nil
}

// SetLevel overrides the verbosity policy at runtime.
func SetLevel(l Level) {
	level = l
}

// CurrentLevel returns the active verbosity policy.
func CurrentLevel() Level {
	return level
}

// entry returns the base log entry carrying the addon prefix fields.
func entry() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"addon":   constant.Name,
		"version": constant.Version,
	})
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured backend per the verbosity policy.

func Error(args ...interface{}) {
	if level >= LevelEssential {
		entry().Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if level >= LevelEssential {
		entry().Errorf(format, args...)
	}
}
func Warn(args ...interface{}) {
	if level >= LevelEssential {
		entry().Warn(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if level >= LevelEssential {
		entry().Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if level >= LevelStandard {
		entry().Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if level >= LevelStandard {
		entry().Infof(format, args...)
	}
}
func Debug(args ...interface{}) {
	if level >= LevelExtended {
		entry().Debug(args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if level >= LevelExtended {
		entry().Debugf(format, args...)
	}
}

// Details emits an aligned multi-line report, one "name: value" row per
// entry, for structured diagnostics such as hardware reports.
func Details(title string, rows map[string]string) {
	if level < LevelStandard || len(rows) == 0 {
		return
	}

	names := lo.Keys(rows)
	sort.Strings(names)
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	b.WriteString(title)
	for _, name := range names {
		b.WriteString(fmt.Sprintf("\n  %-*s : %s", width, name, rows[name]))
	}
	entry().Info(b.String())
}
