package inventory

import "context"

// Repository is the storage contract shared by every inventory entity.
// GetByID returns (nil, nil) when nothing matches. Write methods report a
// uniqueness collision as a conflict AppError and a dangling reference as a
// validation AppError; Delete reports a row that is still referenced as a
// conflict.
type Repository[T any] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id uint) (T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository interface {
	Repository[*Category]
}

type ItemRepository interface {
	Repository[*Item]
}

type LockerRepository interface {
	Repository[*Locker]
}

type StockRepository interface {
	Repository[*Stock]
	ListByLocker(ctx context.Context, lockerID uint) ([]*Stock, error)
}
