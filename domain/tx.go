package domain

import "context"

// Transactor runs fn inside one database transaction. Repositories called with
// the context handed to fn join that transaction; nested calls reuse it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
