package usecases

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/shared/db"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// ListQuery is one skip/limit page of a collection.
type ListQuery struct {
	Skip  int
	Limit int
}

// entity is satisfied by the pointer types of the inventory aggregates.
type entity[E any, P any] interface {
	*E
	ID() uint
	ApplyPatch(patch P, now time.Time) error
}

// crudService implements the store round trips shared by every inventory
// resource. E is the aggregate, P its patch type and D the DTO it renders to.
type crudService[E any, P any, D any, T entity[E, P]] struct {
	resource string
	title    string
	repo     inventory.Repository[T]
	txMgr    db.Runner
	logger   logger.Interface
	toDTO    func(T) D
	now      func() time.Time
}

func newCRUDService[E any, P any, D any, T entity[E, P]](
	resource string,
	repo inventory.Repository[T],
	txMgr db.Runner,
	log logger.Interface,
	toDTO func(T) D,
) *crudService[E, P, D, T] {
	return &crudService[E, P, D, T]{
		resource: resource,
		title:    cases.Title(language.Und).String(resource),
		repo:     repo,
		txMgr:    txMgr,
		logger:   log.Named(resource + "_service"),
		toDTO:    toDTO,
		now:      time.Now,
	}
}

func (s *crudService[E, P, D, T]) notFound() error {
	return errors.NewNotFoundError(fmt.Sprintf("%s not found", s.title))
}

func (s *crudService[E, P, D, T]) create(ctx context.Context, e T) (D, error) {
	log := s.logger.WithContext(ctx)
	log.Infow("creating "+s.resource)

	var zero D
	err := s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.Create(txCtx, e)
	})
	if err != nil {
		return zero, storeError(log, err, "failed to create "+s.resource)
	}

	log.Infow(s.resource+" created successfully", "id", e.ID())
	return s.toDTO(e), nil
}

func (s *crudService[E, P, D, T]) get(ctx context.Context, id uint) (D, error) {
	log := s.logger.WithContext(ctx)
	log.Debugw("fetching "+s.resource, "id", id)

	var zero D
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, storeError(log, err, "failed to get "+s.resource)
	}
	if e == nil {
		log.Warnw(s.resource+" not found", "id", id)
		return zero, s.notFound()
	}
	return s.toDTO(e), nil
}

func (s *crudService[E, P, D, T]) list(ctx context.Context, query ListQuery) ([]D, error) {
	log := s.logger.WithContext(ctx)
	log.Debugw("listing "+s.resource, "skip", query.Skip, "limit", query.Limit)

	entities, err := s.repo.List(ctx, query.Skip, query.Limit)
	if err != nil {
		return nil, storeError(log, err, "failed to list "+s.resource)
	}

	out := make([]D, 0, len(entities))
	for _, e := range entities {
		out = append(out, s.toDTO(e))
	}
	log.Debugw(s.resource+" listed", "count", len(out))
	return out, nil
}

func (s *crudService[E, P, D, T]) update(ctx context.Context, id uint, patch P) (D, error) {
	log := s.logger.WithContext(ctx)
	log.Infow("updating "+s.resource, "id", id)

	var (
		zero    D
		updated T
	)
	err := s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return s.notFound()
		}
		if err := e.ApplyPatch(patch, s.now()); err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return zero, storeError(log, err, "failed to update "+s.resource)
	}

	log.Infow(s.resource+" updated successfully", "id", id)
	return s.toDTO(updated), nil
}

// delete returns the record as it was before removal.
func (s *crudService[E, P, D, T]) delete(ctx context.Context, id uint) (D, error) {
	log := s.logger.WithContext(ctx)
	log.Warnw("deleting "+s.resource, "id", id)

	var (
		zero    D
		deleted T
	)
	err := s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return s.notFound()
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = e
		return nil
	})
	if err != nil {
		return zero, storeError(log, err, "failed to delete "+s.resource)
	}

	log.Infow(s.resource+" deleted successfully", "id", id)
	return s.toDTO(deleted), nil
}
