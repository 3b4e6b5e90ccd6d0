// Package session holds all per-user working state: brand configuration, the
// loaded product image, the gallery of generated assets, the selection, and
// the conversational editing log. Nothing here is persisted; sessions live in
// a TTL cache and die with it.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"bananastudio/internal/catalog"
	"bananastudio/internal/domain"
)

// Canned conversational surface messages.
const (
	greetingNoSelection = "Select a generated asset from the gallery to start editing it with AI."
	greetingSelectedFmt = "I've loaded your %s asset. How would you like to refine it? You can ask me to change the background, adjust lighting, or add elements."

	// EditSuccessMessage acknowledges a completed edit.
	EditSuccessMessage = "I've updated the image based on your request. How does it look?"
	// EditFailureMessage is the apology shown when an edit fails.
	EditFailureMessage = "Sorry, I encountered an issue editing the image. Please try a different instruction."
	// VideoEditMessage is returned when a video asset is targeted for editing.
	VideoEditMessage = "Editing videos via chat is not yet supported."
)

// Session is the unit of isolation. All mutation goes through its methods,
// which take the session mutex; concurrent placeholder updates from the
// generation fan-out are therefore plain list replacements keyed by id and
// commute regardless of completion order.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	brand        domain.BrandConfig
	productImage string
	assets       []domain.GeneratedAsset
	selectedID   string
	chat         []domain.ChatMessage
}

func newSession() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		brand:     domain.BrandConfig{Tone: domain.DefaultTone},
	}
	s.chat = []domain.ChatMessage{modelMessage(greetingNoSelection)}
	return s
}

func modelMessage(text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.ChatRoleModel,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Brand returns the current brand configuration.
func (s *Session) Brand() domain.BrandConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brand
}

// SetBrand replaces the brand configuration wholesale.
func (s *Session) SetBrand(cfg domain.BrandConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brand = cfg
}

// ProductImage returns the loaded product image data URI, if any.
func (s *Session) ProductImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productImage
}

// SetProductImage stores (or clears) the source image for generation.
func (s *Session) SetProductImage(dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productImage = dataURI
}

// InsertAsset places a new asset at the front of the gallery. The gallery is
// ordered newest-first by insertion; completion never reorders it.
func (s *Session) InsertAsset(asset domain.GeneratedAsset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = append([]domain.GeneratedAsset{asset}, s.assets...)
}

// CompleteAsset resolves a loading placeholder in place, preserving its id
// and position. It reports whether the placeholder was still present.
func (s *Session) CompleteAsset(id, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID == id {
			s.assets[i].URL = url
			s.assets[i].IsLoading = false
			return true
		}
	}
	return false
}

// RemoveAsset deletes an asset by id. Removing the selected asset clears the
// selection and resets the chat log to the no-selection greeting.
func (s *Session) RemoveAsset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
				s.chat = []domain.ChatMessage{modelMessage(greetingNoSelection)}
			}
			return true
		}
	}
	return false
}

// ClearAssets empties the gallery, the selection, and the chat log.
func (s *Session) ClearAssets() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = nil
	s.selectedID = ""
	s.chat = []domain.ChatMessage{modelMessage(greetingNoSelection)}
}

// Select marks an asset as the editing target and resets the chat log to a
// single contextual greeting. Loading placeholders cannot be selected.
func (s *Session) Select(id string) (domain.GeneratedAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assets {
		if a.ID != id {
			continue
		}
		if a.IsLoading {
			return domain.GeneratedAsset{}, domain.ErrAssetNotReady
		}
		s.selectedID = id
		s.chat = []domain.ChatMessage{modelMessage(greeting(a.TypeID))}
		return a, nil
	}
	return domain.GeneratedAsset{}, domain.ErrAssetNotFound
}

func greeting(typeID string) string {
	return fmt.Sprintf(greetingSelectedFmt, catalog.DisplayName(typeID))
}

// SelectedID returns the id of the selected asset, or empty.
func (s *Session) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// AssetByID looks up a single gallery entry.
func (s *Session) AssetByID(id string) (domain.GeneratedAsset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return domain.GeneratedAsset{}, false
}

// Assets returns a snapshot of the gallery, newest first.
func (s *Session) Assets() []domain.GeneratedAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GeneratedAsset, len(s.assets))
	copy(out, s.assets)
	return out
}

// AppendChat adds a message to the log and returns it.
func (s *Session) AppendChat(role domain.ChatRole, text string) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, msg)
	return msg
}

// Chat returns a snapshot of the conversational log.
func (s *Session) Chat() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}
