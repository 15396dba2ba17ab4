package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/chasse-patate/game/engine"
)

func createTestConfig() *engine.MatchConfig {
	cfg := engine.DefaultMatchConfig()
	cfg.Seed = 7
	return cfg
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	t.Run("create with custom ID", func(t *testing.T) {
		session, err := manager.Create("test-session", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID != "test-session" {
			t.Errorf("Expected session ID 'test-session', got '%s'", session.ID)
		}
		if session.Match == nil {
			t.Error("Expected match to be initialized")
		}
	})

	t.Run("create with auto-generated ID", func(t *testing.T) {
		session, err := manager.Create("", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID == "" {
			t.Error("Expected a generated session ID")
		}
		if len(session.ID) != 8 {
			t.Errorf("Expected 8-character session ID, got '%s'", session.ID)
		}
	})

	t.Run("duplicate ID rejected", func(t *testing.T) {
		if _, err := manager.Create("dup", config); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if _, err := manager.Create("dup", config); !errors.Is(err, ErrSessionAlreadyExists) {
			t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
		}
		// Case-insensitive collision
		if _, err := manager.Create("DUP", config); !errors.Is(err, ErrSessionAlreadyExists) {
			t.Errorf("Expected ErrSessionAlreadyExists for different case, got %v", err)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		bad := createTestConfig()
		bad.NumPlayers = 0
		if _, err := manager.Create("bad", bad); err == nil {
			t.Error("Expected error for invalid config")
		}
	})
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	created, err := manager.Create("findme", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	t.Run("get existing", func(t *testing.T) {
		session, err := manager.Get("findme")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if session != created {
			t.Error("Expected the same session instance")
		}
	})

	t.Run("get case-insensitive", func(t *testing.T) {
		if _, err := manager.Get("FindMe"); err != nil {
			t.Errorf("Expected case-insensitive lookup to succeed, got %v", err)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		if _, err := manager.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestManager_GetOrCreate(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	first, err := manager.GetOrCreate("goc", config)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	second, err := manager.GetOrCreate("goc", config)
	if err != nil {
		t.Fatalf("GetOrCreate failed on existing: %v", err)
	}
	if first != second {
		t.Error("Expected the existing session to be returned")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", manager.Count())
	}
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	manager.Create("gone", config)
	if err := manager.Delete("gone"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if _, err := manager.Get("gone"); !errors.Is(err, ErrSessionNotFound) {
		t.Error("Expected session to be gone")
	}
	if err := manager.Delete("gone"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	session, _ := manager.Create("touch", config)
	before := session.LastAccessedAt
	time.Sleep(5 * time.Millisecond)

	if err := manager.UpdateLastAccessed("touch"); err != nil {
		t.Fatalf("UpdateLastAccessed failed: %v", err)
	}
	if !session.LastAccessedAt.After(before) {
		t.Error("Expected last accessed time to advance")
	}
	if err := manager.UpdateLastAccessed("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_CleanupExpiredSessions(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	fresh, _ := manager.Create("fresh", config)
	stale, _ := manager.Create("stale", config)
	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := manager.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 removed session, got %d", removed)
	}
	if _, err := manager.Get("stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Error("Expected stale session to be removed")
	}
	if _, err := manager.Get(fresh.ID); err != nil {
		t.Errorf("Expected fresh session to survive, got %v", err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	var wg sync.WaitGroup
	errs := make(chan error, 40)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("session-%d", id)
			if _, err := manager.Create(name, config); err != nil {
				errs <- err
				return
			}
			if _, err := manager.Get(name); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}
	if manager.Count() != 20 {
		t.Errorf("Expected 20 sessions, got %d", manager.Count())
	}
}
