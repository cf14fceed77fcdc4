package config

import (
	"testing"

	"github.com/apolloconfig/agollo/v4/storage"
)

// The listener must satisfy the agollo contract, OnNewestChange included.
var _ storage.ChangeListener = (*apolloListener)(nil)

func TestOverrideFromApollo_SkipsWithoutAddress(t *testing.T) {
	cfg := &Config{}
	closer, err := overrideFromApollo(cfg, NewStore(cfg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closer != nil {
		t.Fatal("no client should be started without APOLLO_ADDRS")
	}
}
