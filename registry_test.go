package moniker_test

import (
	"testing"

	"github.com/zoobzio/moniker"
)

type CacheTestRoute struct {
	Path string `json:"path" name:"/"`
}

func TestUse_Caching(t *testing.T) {
	moniker.Reset() // Clear cache

	b1, err := moniker.Use[CacheTestRoute]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	b2, err := moniker.Use[CacheTestRoute]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if b1 != b2 {
		t.Error("Use() should return cached binder")
	}
}

type BadRoute struct {
	Depth int `name:""`
}

func TestUse_InvalidType(t *testing.T) {
	moniker.Reset()

	if _, err := moniker.Use[BadRoute](); err == nil {
		t.Fatal("Use() should reject a tagged int field")
	}

	// failures are not cached
	if _, err := moniker.Use[BadRoute](); err == nil {
		t.Fatal("Use() should reject a tagged int field on retry")
	}
}

func TestReset(t *testing.T) {
	b1, _ := moniker.Use[CacheTestRoute]()

	moniker.Reset()

	b2, _ := moniker.Use[CacheTestRoute]()

	if b1 == b2 {
		t.Error("Reset() should clear cache, new binder expected")
	}
}
