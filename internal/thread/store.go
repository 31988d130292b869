package thread

//go:generate mockgen -destination=./store_mock.go -package=thread -source=store.go Store

import "context"

// Store persiste threads entre execuções
type Store interface {
	Save(ctx context.Context, t *Thread) error
	Load(ctx context.Context, id string) (*Thread, error)
	Delete(ctx context.Context, id string) error
}
