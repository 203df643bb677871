package roster

import (
	"fmt"
	"sync"

	"github.com/nhaseem/taskman/internal/kv"
)

// Store owns the in-memory dataset and serializes all access to it.
// Every successful mutation persists the whole dataset to the medium
// and then fires exactly one refresh notification; no-op calls (unknown
// IDs, declined confirmations) do neither.
type Store struct {
	mu       sync.Mutex
	medium   kv.Store
	prompter Prompter
	data     Dataset

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Prompter is used to ask the user for confirmation.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks the user a yes/no question via stdin/stdout.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false, err
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes", nil
}

// AutoConfirm implements Prompter by approving every confirmation.
type AutoConfirm struct{}

// Confirm always returns true.
func (AutoConfirm) Confirm(string) (bool, error) { return true, nil }

// Options configures how the store is opened.
type Options struct {
	// Prompter is used for delete confirmation. If nil, StdioPrompter
	// is used.
	Prompter Prompter
}

// Open loads the previously persisted dataset from medium and returns a
// ready store. A medium with no prior content, or content that cannot
// be parsed, yields an empty dataset rather than an error.
func Open(medium kv.Store, opts Options) (*Store, error) {
	if opts.Prompter == nil {
		opts.Prompter = StdioPrompter{}
	}

	data, err := loadDataset(medium)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	return &Store{
		medium:   medium,
		prompter: opts.Prompter,
		data:     data,
		subs:     make(map[int]func()),
	}, nil
}

// Dataset returns a copy of the current in-memory dataset.
func (s *Store) Dataset() Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.clone()
}

// Flush persists the current dataset to the medium. Intended for
// shutdown teardown; routine mutations persist themselves.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveDataset(s.medium, s.data)
}

// Subscribe registers fn to run after every successful mutation. The
// returned cancel func removes the subscription.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// mutate applies fn to the dataset under the store lock. When fn
// reports a change, the dataset is persisted before the lock is
// released and subscribers are notified after. A persist failure leaves
// the in-memory dataset as mutated (the medium is retried on the next
// mutation or Flush) and suppresses the notification.
func (s *Store) mutate(fn func(ds *Dataset) bool) error {
	s.mu.Lock()
	changed := fn(&s.data)
	var err error
	if changed {
		err = saveDataset(s.medium, s.data)
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if changed {
		s.notify()
	}
	return nil
}
