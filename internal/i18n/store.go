package i18n

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Store holds the currently loaded dictionary. Dependents registered with
// Subscribe are told about every replacement.
type Store struct {
	loader    Loader
	supported []string
	log       *logrus.Entry

	mu          sync.RWMutex
	lang        string
	dict        *Dictionary
	subscribers []func(lang string, dict *Dictionary)
}

func NewStore(loader Loader, supported []string, log *logrus.Entry) *Store {
	return &Store{loader: loader, supported: supported, log: log}
}

// Load fetches lang and replaces the current dictionary. On failure the error
// is logged and the previous dictionary, possibly nil, stays in place.
func (s *Store) Load(ctx context.Context, lang string) (*Dictionary, error) {
	if len(s.supported) > 0 && !lo.Contains(s.supported, lang) {
		err := newLoadError(lang, "config", ErrUnsupported, "not in configured languages")
		s.log.WithField("lang", lang).Warn(err.Error())
		return nil, err
	}

	s.log.WithField("lang", lang).Info("loading content")
	dict, err := s.loader.Load(ctx, lang)
	if err != nil {
		entry := s.log.WithField("lang", lang).WithError(err)
		var le *LoadError
		if errors.As(err, &le) && le.Err != nil {
			entry = entry.WithField("stack", le.Err.ErrorStack())
		}
		entry.Error("error loading content")
		return nil, err
	}
	s.log.WithField("lang", lang).Info("content loaded")
	s.Replace(lang, dict)
	return dict, nil
}

// Current returns the loaded dictionary or nil.
func (s *Store) Current() *Dictionary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dict
}

// Language returns the language of the current dictionary.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Supported lists the configured languages.
func (s *Store) Supported() []string {
	return append([]string(nil), s.supported...)
}

// Replace swaps the dictionary wholesale and notifies subscribers.
func (s *Store) Replace(lang string, dict *Dictionary) {
	s.mu.Lock()
	s.lang = lang
	s.dict = dict
	subs := append([]func(string, *Dictionary){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(lang, dict)
	}
}

// Subscribe registers fn for future replacements. If a dictionary is already
// loaded fn is called with it immediately.
func (s *Store) Subscribe(fn func(lang string, dict *Dictionary)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	lang, dict := s.lang, s.dict
	s.mu.Unlock()

	if dict != nil {
		fn(lang, dict)
	}
}
