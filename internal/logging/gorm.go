package logging

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	Warn().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// GormLogger routes slow queries and SQL errors through zerolog.
func GormLogger(level logger.LogLevel) logger.Interface {
	return logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
