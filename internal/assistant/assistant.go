// Package assistant answers operator chat messages with canned monitoring
// replies after a simulated typing delay.
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wildfire-watch/internal/domain"
)

// greeting is the first message shown when the chat opens.
const greeting = "Hello! I'm ARIA, your AI assistant for wildfire monitoring. I can help you analyze camera feeds, interpret alerts, and coordinate emergency responses. How can I assist you today?"

// Responses are the canned replies, one of which is chosen per message.
var Responses = []string{
	"I've analyzed the current camera feeds. Camera North Ridge shows elevated temperature readings of 89°F with 94.2% fire detection confidence. I recommend immediate emergency protocol activation.",
	"Based on wind patterns and current alerts, the fire risk is critical in Sector A-1. I've automatically notified the fire department and park rangers. Evacuation procedures should begin immediately.",
	"Current system status: 3 active fire alerts, 4 cameras online, 1 offline. The Pine Forest Camera detected smoke patterns consistent with early-stage wildfire. Shall I initiate emergency response?",
	"Weather conditions show high winds at 22 mph in the alert zones. This significantly increases fire spread risk. I recommend deploying additional resources to Sectors A-1 and C-2.",
	"I've detected unusual heat signatures in the Valley View area. While not yet at alert threshold, I suggest increasing monitoring frequency and preparing preventive measures.",
}

// Rand is the source of uniform [0, 1) draws.
type Rand interface {
	Float64() float64
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat entry.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Assistant produces replies. It is safe for concurrent use.
type Assistant struct {
	clock clockwork.Clock
	delay time.Duration

	mu  sync.Mutex
	rnd Rand
}

// New creates an Assistant that waits delay before each reply.
func New(clk clockwork.Clock, rnd Rand, delay time.Duration) *Assistant {
	return &Assistant{clock: clk, rnd: rnd, delay: delay}
}

// Greeting returns the message that opens a chat.
func (a *Assistant) Greeting() Message {
	return Message{
		ID:        "greeting",
		Role:      RoleAssistant,
		Content:   greeting,
		Timestamp: a.clock.Now(),
	}
}

// Reply waits the typing delay and returns a canned response to text. Blank
// input yields a *domain.ValidationError; if ctx ends first, ctx.Err().
func (a *Assistant) Reply(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, &domain.ValidationError{Reason: "message is empty", Fields: []string{"message"}}
	}

	if a.delay > 0 {
		timer := a.clock.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case <-timer.Chan():
		}
	}

	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   a.pick(),
		Timestamp: a.clock.Now(),
	}, nil
}

func (a *Assistant) pick() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	i := int(a.rnd.Float64() * float64(len(Responses)))
	return Responses[min(i, len(Responses)-1)]
}
