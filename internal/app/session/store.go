package session

import (
	"sync"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/tripmind/tripmind/internal/app/models"
)

// conversationKey is the cookie-session key holding the visitor's
// conversation id.
const conversationKey = "conversation_id"

// Conversation is one visitor's append-only message log. Messages are
// immutable once appended; edits happen by appending a new message.
type conversation struct {
	mu       sync.Mutex
	messages []models.Message
	inFlight bool
}

// Store keeps per-visitor conversation logs in memory. Idle
// conversations expire; there is no persistence, a restart clears all
// history.
type Store struct {
	cache *gocache.Cache
}

// NewStore builds a store whose conversations expire after ttl idle
// time.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{cache: gocache.New(ttl, ttl/2)}
}

// ConversationID returns the visitor's conversation id from the cookie
// session, minting and persisting one on first contact.
func (s *Store) ConversationID(c *gin.Context) string {
	sess := sessions.Default(c)
	if v, ok := sess.Get(conversationKey).(string); ok && v != "" {
		return v
	}
	id := uuid.NewString()
	sess.Set(conversationKey, id)
	_ = sess.Save()
	return id
}

// History returns a copy of the conversation's messages in insertion
// order. Touching a conversation refreshes its expiry.
func (s *Store) History(id string) []models.Message {
	conv := s.conversation(id)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	out := make([]models.Message, len(conv.messages))
	copy(out, conv.messages)
	return out
}

// BeginTurn marks the conversation as having a chat turn in flight.
// Returns false when one is already outstanding; at most one turn runs
// per conversation at a time.
func (s *Store) BeginTurn(id string) bool {
	conv := s.conversation(id)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	if conv.inFlight {
		return false
	}
	conv.inFlight = true
	return true
}

// EndTurn releases the in-flight mark set by BeginTurn.
func (s *Store) EndTurn(id string) {
	conv := s.conversation(id)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.inFlight = false
}

// Append adds messages to the end of the conversation log.
func (s *Store) Append(id string, msgs ...models.Message) {
	conv := s.conversation(id)
	conv.mu.Lock()
	defer conv.mu.Unlock()
	conv.messages = append(conv.messages, msgs...)
}

func (s *Store) conversation(id string) *conversation {
	if v, ok := s.cache.Get(id); ok {
		conv := v.(*conversation)
		s.cache.Set(id, conv, gocache.DefaultExpiration)
		return conv
	}
	conv := &conversation{}
	s.cache.Set(id, conv, gocache.DefaultExpiration)
	return conv
}
