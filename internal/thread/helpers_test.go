package thread

import "github.com/vitormoschetta/adk-patterns/internal/config"

func configFor(store string, dir ...string) config.ThreadConfig {
	cfg := config.ThreadConfig{Store: store}
	if len(dir) > 0 {
		cfg.Dir = dir[0]
	}
	return cfg
}
