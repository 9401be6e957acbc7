package state

import (
	"context"

	"github.com/thinkscotty/contentspark/internal/models"
)

// Slots is the persistence capability the observer writes through;
// implemented by *storage.Persistence.
type Slots interface {
	SaveHistory(ctx context.Context, items models.History)
	LoadHistory(ctx context.Context) models.History
	SaveTheme(ctx context.Context, theme models.ThemeSettings)
	LoadTheme(ctx context.Context) models.ThemeSettings
}

// PersistenceObserver mirrors the changed slot after each transition.
// Saves are best effort; the slots log and swallow their own failures.
type PersistenceObserver struct {
	slots Slots
}

func NewPersistenceObserver(slots Slots) *PersistenceObserver {
	return &PersistenceObserver{slots: slots}
}

func (p *PersistenceObserver) Observe(ctx context.Context, t Transition) {
	if t.HistoryChanged() {
		p.slots.SaveHistory(ctx, t.Next.History)
	}
	if t.ThemeChanged() {
		p.slots.SaveTheme(ctx, t.Next.Theme)
	}
}

// Restore builds a store from the persisted slots and subscribes a
// PersistenceObserver to it.
func Restore(ctx context.Context, slots Slots, observers ...Observer) *Store {
	initial := State{
		History: slots.LoadHistory(ctx),
		Theme:   slots.LoadTheme(ctx),
	}
	return NewStore(initial, append([]Observer{NewPersistenceObserver(slots)}, observers...)...)
}
