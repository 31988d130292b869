package thread

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileStore grava cada thread num arquivo JSON dentro de um diretório
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create thread dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path devolve o arquivo onde a thread id é guardada
func (s *FileStore) Path(id string) string {
	return filepath.Join(s.dir, "agent_thread_"+id+".json")
}

func (s *FileStore) Save(ctx context.Context, t *Thread) error {
	if !validID.MatchString(t.ID) {
		return fmt.Errorf("invalid thread id %q", t.ID)
	}
	data, err := t.Serialize()
	if err != nil {
		return err
	}

	// grava num temporário e renomeia para não deixar arquivo pela metade
	tmp, err := os.CreateTemp(s.dir, ".thread-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write thread: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write thread: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(t.ID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store thread: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, id string) (*Thread, error) {
	if !validID.MatchString(id) {
		return nil, fmt.Errorf("invalid thread id %q", id)
	}
	data, err := os.ReadFile(s.Path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read thread: %w", err)
	}
	return Deserialize(data)
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if !validID.MatchString(id) {
		return fmt.Errorf("invalid thread id %q", id)
	}
	err := os.Remove(s.Path(id))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	return err
}
