package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"coldsign/internal/domain"
)

const containerExt = ".json"

// FileStore keeps one encrypted key container per file under dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveContainer writes the container under name, replacing any previous
// one atomically.
func (s *FileStore) SaveContainer(name string, c domain.KeyContainer) error {
	path, err := s.containerPath(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeJSON(path, c, 0o600)
}

// LoadContainer reads the container stored under name.
func (s *FileStore) LoadContainer(name string) (domain.KeyContainer, error) {
	path, err := s.containerPath(name)
	if err != nil {
		return domain.KeyContainer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var c domain.KeyContainer
	found, err := readJSON(path, &c)
	if err != nil {
		return domain.KeyContainer{}, &domain.ContainerError{Reason: "reading container " + name, Err: err}
	}
	if !found {
		return domain.KeyContainer{}, fmt.Errorf("no container named %q", name)
	}
	return c, nil
}

// ListContainers returns the stored container names, sorted.
func (s *FileStore) ListContainers() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), containerExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), containerExt))
	}
	sort.Strings(names)
	return names, nil
}

// containerPath validates name and maps it to its file. Names must not
// escape the store directory.
func (s *FileStore) containerPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid container name %q", name)
	}
	return filepath.Join(s.dir, name+containerExt), nil
}

// Compile-time assertion that FileStore implements domain.ContainerStore.
var _ domain.ContainerStore = (*FileStore)(nil)
