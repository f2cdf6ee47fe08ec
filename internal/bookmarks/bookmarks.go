// Package bookmarks applies bookmark changes to the host repository under
// its locking protocol. The host transaction and lock machinery are external
// collaborators; this package only fixes the acquisition order and
// guarantees release on every exit path.
package bookmarks

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"hgbridge/pkg/domain"
	"hgbridge/pkg/logger"
)

// Unlocker releases a held lock.
type Unlocker interface {
	Unlock()
}

// Transaction is the host system's transaction handle. Close commits the
// transaction; Release aborts it unless Close already ran. Release is safe
// to call after Close and must run on every exit path.
type Transaction interface {
	Close() error
	Release()
}

// Store applies bookmark changes inside an open transaction. This is the
// single capability the host supplies at integration time; there is no
// runtime probing for older interfaces.
type Store interface {
	ApplyChanges(tx Transaction, changes []domain.BookmarkChange) error
}

// Repository is the subset of the host repository the bookmark writer
// needs: the two locks, the transaction factory and the bookmark store.
type Repository interface {
	// WLock acquires the working-copy lock.
	WLock() (Unlocker, error)
	// Lock acquires the repository lock. Callers must already hold the
	// working-copy lock; acquiring in the other order deadlocks against
	// the host's own lock users.
	Lock() (Unlocker, error)
	// Transaction opens a named transaction. Both locks must be held.
	Transaction(name string) (Transaction, error)
	// Bookmarks returns the bookmark store.
	Bookmarks() Store
}

// defaultTxnName labels transactions opened on behalf of the git handler
// when the caller does not supply a name.
const defaultTxnName = "git_handler"

// Apply writes the given bookmark changes to the repository. It acquires
// the working-copy lock, then the repository lock, then opens a transaction,
// in that fixed order; the transaction is committed before any lock is
// released, and locks and transaction are released unconditionally via
// defers regardless of outcome. Failures are returned immediately, never
// retried.
func Apply(ctx context.Context, repo Repository, changes []domain.BookmarkChange, name string) error {
	if name == "" {
		name = defaultTxnName
	}

	wlock, err := repo.WLock()
	if err != nil {
		return errors.Wrap(err, "could not acquire working-copy lock")
	}
	defer wlock.Unlock()

	lock, err := repo.Lock()
	if err != nil {
		return errors.Wrap(err, "could not acquire repository lock")
	}
	defer lock.Unlock()

	tx, err := repo.Transaction(name)
	if err != nil {
		return errors.Wrap(err, "could not open transaction")
	}
	defer tx.Release()

	if err := repo.Bookmarks().ApplyChanges(tx, changes); err != nil {
		return errors.Wrap(err, "could not apply bookmark changes")
	}

	if err := tx.Close(); err != nil {
		return errors.Wrap(err, "could not commit transaction")
	}

	logger.Debug(ctx, "bookmarks updated",
		zap.String("transaction", name),
		zap.Int("changes", len(changes)))

	return nil
}
