// Package storage provides the string-keyed persistence collaborator the
// tracker writes through. Collections are stored as JSON strings under two
// stable keys, alongside a handful of scalar preference keys.
package storage

import "errors"

var ErrNotFound = errors.New("storage: not found")

// Stable keys. Renaming any of these orphans previously stored data.
const (
	KeyTasks               = "tasks"
	KeyGoals               = "goals"
	KeyTheme               = "theme"
	KeyPushPromptDismissed = "push_prompt_dismissed"
	KeyLastNotifyCount     = "last_notify_count"
)

type KV interface {
	// Get returns the stored value, or ErrNotFound when the key has never
	// been written.
	Get(key string) (string, error)

	Set(key, value string) error

	// SetAll writes every pair in one atomic step. The tracker uses this
	// so a reader never observes tasks updated without goals.
	SetAll(pairs map[string]string) error
}
