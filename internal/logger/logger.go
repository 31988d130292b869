package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config define nível, formato e destino dos logs
type Config struct {
	Level  string
	Format string
	File   string
}

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	closer        io.Closer
)

// Init configura o logger global. Pode ser chamado mais de uma vez; a última
// configuração vence.
func Init(cfg Config) {
	var out io.Writer = os.Stderr
	var c io.Closer
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     14,
		}
		out = io.MultiWriter(os.Stderr, rotating)
		c = rotating
	}

	l := New(out, cfg)

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	closer = c
	defaultLogger = l
	slog.SetDefault(l)
}

// New cria um logger independente escrevendo em w
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// L retorna o logger global
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Named retorna um logger filho identificado pelo componente
func Named(component string) *slog.Logger {
	return L().With("component", component)
}

// Close fecha o arquivo de log rotativo, se houver
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
