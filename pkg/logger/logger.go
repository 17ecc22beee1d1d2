package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте (main.go) или в TestMain.
func Init() {
	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	InitWith(logLevel, os.Getenv("LOG_FORMAT"), os.Stdout)
}

// InitWith настраивает логгер явно (после загрузки конфига).
// Неизвестный уровень молча превращается в info.
func InitWith(level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// For возвращает логгер с полем component, так пишут все подсистемы.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
