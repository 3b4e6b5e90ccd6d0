package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"bananastudio/internal/domain"
)

func asset(id string) domain.GeneratedAsset {
	return domain.GeneratedAsset{
		ID:        id,
		URL:       "data:image/png;base64,Zm9v",
		TypeID:    "insta-post",
		Timestamp: time.Now(),
		MediaType: domain.MediaTypeImage,
	}
}

func TestNewSessionDefaults(t *testing.T) {
	sess := newSession()
	if sess.ID == "" {
		t.Fatalf("session id empty")
	}
	if got := sess.Brand().Tone; got != domain.DefaultTone {
		t.Fatalf("default tone = %q, want %q", got, domain.DefaultTone)
	}

	chat := sess.Chat()
	if len(chat) != 1 {
		t.Fatalf("initial chat length = %d, want 1", len(chat))
	}
	if chat[0].Role != domain.ChatRoleModel {
		t.Fatalf("greeting role = %q, want model", chat[0].Role)
	}
	if chat[0].Text != greetingNoSelection {
		t.Fatalf("greeting = %q", chat[0].Text)
	}
}

func TestGalleryOrderNewestFirst(t *testing.T) {
	sess := newSession()
	sess.InsertAsset(asset("a"))
	sess.InsertAsset(asset("b"))
	sess.InsertAsset(asset("c"))

	got := sess.Assets()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, id := range []string{"c", "b", "a"} {
		if got[i].ID != id {
			t.Fatalf("assets[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestCompleteAssetInPlace(t *testing.T) {
	sess := newSession()
	ph := asset("ph")
	ph.URL = ""
	ph.IsLoading = true
	sess.InsertAsset(ph)
	sess.InsertAsset(asset("newer"))

	if !sess.CompleteAsset("ph", "data:image/png;base64,ZG9uZQ==") {
		t.Fatalf("CompleteAsset reported missing placeholder")
	}

	got := sess.Assets()
	// Completion must not reorder: "newer" stays in front.
	if got[0].ID != "newer" || got[1].ID != "ph" {
		t.Fatalf("order after completion = [%s %s]", got[0].ID, got[1].ID)
	}
	if got[1].IsLoading || got[1].URL == "" {
		t.Fatalf("placeholder not resolved: %+v", got[1])
	}

	if sess.CompleteAsset("gone", "x") {
		t.Fatalf("CompleteAsset resolved a missing id")
	}
}

func TestRemoveAsset(t *testing.T) {
	sess := newSession()
	sess.InsertAsset(asset("a"))
	sess.InsertAsset(asset("b"))

	if !sess.RemoveAsset("a") {
		t.Fatalf("RemoveAsset(a) = false")
	}
	if sess.RemoveAsset("a") {
		t.Fatalf("RemoveAsset(a) removed twice")
	}
	if got := sess.Assets(); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("remaining assets = %+v", got)
	}
}

func TestRemoveSelectedAssetResetsChat(t *testing.T) {
	sess := newSession()
	sess.InsertAsset(asset("a"))
	if _, err := sess.Select("a"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	sess.AppendChat(domain.ChatRoleUser, "make it pop")

	sess.RemoveAsset("a")

	if sess.SelectedID() != "" {
		t.Fatalf("selection survived removal")
	}
	chat := sess.Chat()
	if len(chat) != 1 || chat[0].Text != greetingNoSelection {
		t.Fatalf("chat not reset: %+v", chat)
	}
}

func TestSelectResetsChatWithGreeting(t *testing.T) {
	sess := newSession()
	sess.InsertAsset(asset("a"))
	sess.AppendChat(domain.ChatRoleUser, "stale history")

	selected, err := sess.Select("a")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if selected.ID != "a" {
		t.Fatalf("selected.ID = %q", selected.ID)
	}
	if sess.SelectedID() != "a" {
		t.Fatalf("SelectedID = %q", sess.SelectedID())
	}

	chat := sess.Chat()
	if len(chat) != 1 {
		t.Fatalf("chat length after select = %d, want 1", len(chat))
	}
	if !strings.Contains(chat[0].Text, "Instagram Post") {
		t.Fatalf("greeting missing asset name: %q", chat[0].Text)
	}
}

func TestSelectRejectsLoadingAndMissing(t *testing.T) {
	sess := newSession()
	ph := asset("ph")
	ph.IsLoading = true
	sess.InsertAsset(ph)

	if _, err := sess.Select("ph"); !errors.Is(err, domain.ErrAssetNotReady) {
		t.Fatalf("err = %v, want ErrAssetNotReady", err)
	}
	if _, err := sess.Select("missing"); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("err = %v, want ErrAssetNotFound", err)
	}
	if sess.SelectedID() != "" {
		t.Fatalf("failed select left a selection")
	}
}

func TestClearAssets(t *testing.T) {
	sess := newSession()
	sess.InsertAsset(asset("a"))
	if _, err := sess.Select("a"); err != nil {
		t.Fatalf("Select: %v", err)
	}

	sess.ClearAssets()

	if len(sess.Assets()) != 0 {
		t.Fatalf("assets survived clear")
	}
	if sess.SelectedID() != "" {
		t.Fatalf("selection survived clear")
	}
	chat := sess.Chat()
	if len(chat) != 1 || chat[0].Text != greetingNoSelection {
		t.Fatalf("chat not reset: %+v", chat)
	}
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(time.Minute)

	sess := store.Create()
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sess {
		t.Fatalf("Get returned a different session")
	}

	if _, err := store.Get("nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}

	store.Delete(sess.ID)
	if _, err := store.Get(sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("deleted session still resolvable")
	}
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	sess := store.Create()

	time.Sleep(50 * time.Millisecond)

	if _, err := store.Get(sess.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expired session still resolvable")
	}
}
