package commands

import (
	"context"
)

// UnlinkDefaultAccessoryCommandHandler removes a family default link. An
// absent link yields errs.ObjectNotFoundError.
type UnlinkDefaultAccessoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUnlinkDefaultAccessoryCommandHandler(uowFactory CatalogUoWFactory) UnlinkDefaultAccessoryCommandHandler {
	return UnlinkDefaultAccessoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UnlinkDefaultAccessoryCommandHandler) Handle(ctx context.Context, cmd UnlinkDefaultAccessoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MachineFamilyRepository()
	family, err := repo.Get(ctx, cmd.FamilyID())
	if err != nil {
		return err
	}

	if err = family.UnlinkAccessory(cmd.AccessoryID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, family); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
