package keyring

import (
	"fmt"
	"sync"

	"upbit/pkg/core"
)

// Store holds the access and secret key of one client. Each client owns its
// own Store, so clients with different keys can run side by side.
type Store struct {
	mu        sync.RWMutex
	accessKey string
	secretKey string
}

func New() *Store {
	return &Store{}
}

// FromCredentials returns a Store preloaded with creds. A nil creds yields an
// empty Store.
func FromCredentials(creds *core.Credentials) *Store {
	s := New()
	if creds != nil {
		s.SetAccessKey(creds.AccessKey)
		s.SetSecretKey(creds.SecretKey)
	}
	return s
}

func (s *Store) SetAccessKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessKey = key
}

func (s *Store) SetSecretKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secretKey = key
}

// Credentials returns a copy of both keys, or a KindMissingCredentials error
// if either is unset.
func (s *Store) Credentials() (core.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.accessKey == "" && s.secretKey == "":
		return core.Credentials{}, core.NewLocalError(core.KindMissingCredentials, "access key and secret key are not set")
	case s.accessKey == "":
		return core.Credentials{}, core.NewLocalError(core.KindMissingCredentials, "access key is not set")
	case s.secretKey == "":
		return core.Credentials{}, core.NewLocalError(core.KindMissingCredentials, "secret key is not set")
	}
	return core.Credentials{AccessKey: s.accessKey, SecretKey: s.secretKey}, nil
}

// HasCredentials returns true if both keys are set.
func (s *Store) HasCredentials() bool {
	_, err := s.Credentials()
	return err == nil
}

func (s *Store) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("Store{AccessKey:%s, SecretKey:%s}", maskKey(s.accessKey), maskKey(s.secretKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
