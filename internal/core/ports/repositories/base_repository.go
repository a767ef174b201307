package repositories

import "context"

// TxManager runs a function inside a single storage transaction. The context
// passed to fn carries the transaction; repository methods invoked with it
// participate in the same transaction and the whole unit commits or rolls
// back together. Multi-aggregate writes (posting an entry together with the
// numbering counter, reversal's two entry writes) must go through this
// contract rather than assuming the storage layer is implicitly transactional.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
