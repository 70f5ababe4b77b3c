package viewsession

import (
	"sync"
	"time"

	"github.com/dalemusser/learnhub/internal/app/system/copyindicator"
	"github.com/dalemusser/learnhub/internal/app/system/tabs"
)

// State is the page state of one browser. It belongs to at most one topic at a
// time; opening another topic discards the navigator and the copy marks.
type State struct {
	ID string

	mu      sync.Mutex
	copyTTL time.Duration
	topicID string
	nav     *tabs.Navigator
	copied  *copyindicator.Indicator
	seen    time.Time
}

// NewState returns a standalone State, mainly for tests.
func NewState(copyTTL time.Duration) *State {
	return newState("", copyTTL)
}

func newState(id string, copyTTL time.Duration) *State {
	return &State{
		ID:      id,
		copyTTL: copyTTL,
		nav:     tabs.New(),
		copied:  copyindicator.New(copyTTL),
	}
}

// openLocked switches the state to topicID, discarding page state that
// belonged to a different topic.
func (s *State) openLocked(topicID string) {
	if s.topicID == topicID {
		return
	}
	s.copied.Close()
	s.topicID = topicID
	s.nav = tabs.New()
	s.copied = copyindicator.New(s.copyTTL)
}

// Open records that the browser is viewing topicID and returns the active
// section. Re-opening the same topic keeps its section.
func (s *State) Open(topicID string) tabs.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openLocked(topicID)
	return s.nav.Current()
}

// Select activates section on topicID. An unknown section leaves the active
// section unchanged and returns tabs.ErrUnknownSection.
func (s *State) Select(topicID, section string) (tabs.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openLocked(topicID)
	err := s.nav.Activate(section)
	return s.nav.Current(), err
}

// Leave discards all page state, as when the browser returns to the catalog.
func (s *State) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openLocked("")
}

// TopicID returns the topic the state currently belongs to.
func (s *State) TopicID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topicID
}

// MarkCopied marks exampleID of topicID as copied.
func (s *State) MarkCopied(topicID, exampleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openLocked(topicID)
	s.copied.Copy(exampleID)
}

// Copied reports whether exampleID of topicID is currently marked.
func (s *State) Copied(topicID, exampleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.topicID != topicID {
		return false
	}
	return s.copied.Copied(exampleID)
}

// CopiedSet returns the marked example IDs of topicID as a set.
func (s *State) CopiedSet(topicID string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool)
	if s.topicID != topicID {
		return out
	}
	for _, id := range s.copied.Active() {
		out[id] = true
	}
	return out
}

// CopyTTL returns how long copy marks last.
func (s *State) CopyTTL() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copied.TTL()
}

func (s *State) touch(now time.Time) {
	s.mu.Lock()
	s.seen = now
	s.mu.Unlock()
}

func (s *State) lastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen
}

// Close stops pending copy timers.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copied.Close()
}
