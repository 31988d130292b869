package thread

import (
	"context"
	"fmt"

	"github.com/vitormoschetta/adk-patterns/internal/config"
)

// Open cria o Store escolhido na configuração. O close devolvido libera as
// conexões do backend e nunca é nil.
func Open(ctx context.Context, cfg config.ThreadConfig) (Store, func(), error) {
	switch cfg.Store {
	case "", "file":
		s, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case "redis":
		s, err := NewRedisStore(ctx, cfg.RedisURL, 0)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "postgres":
		s, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported thread store %q", cfg.Store)
	}
}
