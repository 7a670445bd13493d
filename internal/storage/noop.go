package storage

// NoopStore stands in for an environment without persistent storage.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Get(_ string) (string, bool, error) { return "", false, nil }
func (n *NoopStore) Set(_, _ string) error               { return ErrUnavailable }
func (n *NoopStore) Remove(_ string) error               { return ErrUnavailable }
func (n *NoopStore) Close() error                        { return nil }
