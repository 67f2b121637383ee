package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/LavenderBridge/multidrill/internal/config"
	"github.com/LavenderBridge/multidrill/internal/db"
	"github.com/LavenderBridge/multidrill/internal/scheduler"
)

// resolveProfile returns the profile to operate on: the --profile flag
// when set, otherwise the configured default.
func resolveProfile(cfg config.Config) string {
	if flagProfile != "" {
		return flagProfile
	}
	return cfg.Profile
}

// openStore resolves configuration and opens the profile database. A
// profile file that is not a valid database is moved aside and replaced
// with a fresh one, with a warning; only real I/O failures propagate.
func openStore() (*db.Store, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	profile := resolveProfile(cfg)
	path := cfg.ProfilePath(profile)

	store, err := db.Open(path)
	if errors.Is(err, db.ErrCorruptProfile) {
		fmt.Println("⚠️ Saved profile unreadable, starting fresh:", err)
		if renameErr := os.Rename(path, path+".corrupt"); renameErr != nil {
			return nil, "", renameErr
		}
		store, err = db.Open(path)
	}
	if err != nil {
		return nil, "", err
	}
	return store, profile, nil
}

// loadSession overlays the profile's saved cards onto a freshly
// shuffled deck. Unreadable saved state falls back to a fresh deck with
// a warning; a missing profile is simply a first run.
func loadSession(store *db.Store) *scheduler.Session {
	session := scheduler.New(rand.New(rand.NewSource(time.Now().UnixNano())))

	saved, err := store.LoadCards()
	if err != nil {
		fmt.Println("⚠️ Saved progress unreadable, starting fresh:", err)
		return session
	}

	session.ApplyChanges(saved)
	return session
}
