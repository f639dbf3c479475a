package logging

import (
	"testing"
)

func TestInitializeRejectsBadLevel(t *testing.T) {
	if err := Initialize(Config{Level: "shouting"}); err == nil {
		t.Fatal("Initialize should reject an unknown level")
	}
}

func TestInitializeAndGet(t *testing.T) {
	if err := Initialize(Config{Level: "debug"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if Get(CategoryTools) == nil {
		t.Fatal("Get returned nil logger")
	}
	Sync()
}

func TestDisabledCategoryIsSilenced(t *testing.T) {
	if err := Initialize(Config{Level: "debug", Disabled: map[string]bool{string(CategoryStore): true}}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	log := Get(CategoryStore)
	if log == nil {
		t.Fatal("Get returned nil logger for disabled category")
	}
	// Must be safe to use even when silenced.
	log.Debugf("this goes nowhere: %d", 42)
}
