package main

import (
	"fmt"

	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/proof"
	"github.com/jonathan/placement-readiness/internal/store"
)

// openStores opens the SQLite-backed history and proof stores at the
// resolved path (flag > PLACEMENT_STORE env > config file > default).
// The returned close function must be called when done.
func openStores(storeFlag, configFlag string) (*store.History, *proof.Store, func(), error) {
	var cfg *config.Config
	if configFlag != "" {
		loaded, err := config.LoadConfig(configFlag)
		if err != nil {
			return nil, nil, nil, err
		}
		cfg = loaded
	}

	path, err := config.ResolveStorePath(storeFlag, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	kv, err := store.OpenSQLite(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	closeFn := func() { _ = kv.Close() }
	return store.NewHistory(kv), proof.NewStore(kv), closeFn, nil
}
