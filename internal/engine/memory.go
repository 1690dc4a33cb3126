package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// Conversation limits and retention windows.
const (
	UserCooldown       = 3 * time.Second
	CacheTTL           = 24 * time.Hour
	SweepInterval      = time.Hour
	MaxHistoryMessages = 6
	MaxMessageChars    = 500
)

// CooldownReply is returned verbatim when a user sends messages faster than
// the cooldown window allows.
const CooldownReply = "Easy there! Give me a second and I’ll style your next look."

type cacheEntry struct {
	reply    string
	storedAt time.Time
}

// Memory holds the per-user rate limiter and the response cache. Both maps
// are process-local and guarded by a single mutex; the now func is injected
// so tests can drive the clock.
type Memory struct {
	mu        sync.Mutex
	lastSeen  map[string]time.Time
	cache     map[string]cacheEntry
	lastSweep time.Time
	now       func() time.Time
}

func NewMemory() *Memory {
	return newMemoryAt(time.Now)
}

func newMemoryAt(now func() time.Time) *Memory {
	return &Memory{
		lastSeen:  make(map[string]time.Time),
		cache:     make(map[string]cacheEntry),
		lastSweep: now(),
		now:       now,
	}
}

// CacheKey derives the cache identity of a reply: the first-turn flag and
// classified mode join the normalized message text, so the same question
// never collides across modes or across first/subsequent turns.
func CacheKey(firstTurn bool, mode IntentMode, message string) string {
	turn := "next"
	if firstTurn {
		turn = "first"
	}
	normalized := strings.Join(strings.Fields(strings.ToLower(message)), " ")
	sum := sha256.Sum256([]byte(turn + ":" + string(mode) + ":" + normalized))
	return hex.EncodeToString(sum[:])
}

// Throttled reports whether the user is still inside the cooldown window and
// unconditionally records this attempt as their latest activity. Recording
// on every call means a user who keeps sending during the cooldown keeps
// extending it.
func (m *Memory) Throttled(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	last, seen := m.lastSeen[userID]
	m.lastSeen[userID] = now
	return seen && now.Sub(last) < UserCooldown
}

// Lookup returns the cached reply for key if one exists and is younger than
// the TTL. Expired entries are deleted on read.
func (m *Memory) Lookup(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.cache[key]
	if !ok {
		return "", false
	}
	if m.now().Sub(entry.storedAt) >= CacheTTL {
		delete(m.cache, key)
		return "", false
	}
	return entry.reply, true
}

// Store caches a reply under key, replacing any previous entry.
func (m *Memory) Store(key, reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[key] = cacheEntry{reply: reply, storedAt: m.now()}
	m.maybeSweepLocked()
}

// maybeSweepLocked drops expired cache entries and stale cooldown records at
// most once per sweep interval. Called with the mutex held.
func (m *Memory) maybeSweepLocked() {
	now := m.now()
	if now.Sub(m.lastSweep) < SweepInterval {
		return
	}
	m.lastSweep = now
	for key, entry := range m.cache {
		if now.Sub(entry.storedAt) >= CacheTTL {
			delete(m.cache, key)
		}
	}
	for user, last := range m.lastSeen {
		if now.Sub(last) >= SweepInterval {
			delete(m.lastSeen, user)
		}
	}
}

// Sweep forces an immediate cleanup pass regardless of the sweep interval.
func (m *Memory) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSweep = time.Time{}
	m.maybeSweepLocked()
}
