package commands

import (
	"context"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
)

// LinkDefaultAccessoryCommandHandler creates or updates a family default link.
// Both the family and the accessory must exist. Line items already on orders
// keep the accessories they were materialized with.
type LinkDefaultAccessoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewLinkDefaultAccessoryCommandHandler(uowFactory CatalogUoWFactory) LinkDefaultAccessoryCommandHandler {
	return LinkDefaultAccessoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *LinkDefaultAccessoryCommandHandler) Handle(
	ctx context.Context,
	cmd LinkDefaultAccessoryCommand,
) (*catalog.DefaultAccessory, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	familyRepo := uow.MachineFamilyRepository()
	family, err := familyRepo.Get(ctx, cmd.FamilyID())
	if err != nil {
		return nil, err
	}

	if _, err = uow.AccessoryRepository().Get(ctx, cmd.AccessoryID()); err != nil {
		return nil, err
	}

	link, err := family.LinkAccessory(kernel.NewUUID(), cmd.AccessoryID(), cmd.Terms())
	if err != nil {
		return nil, err
	}

	if err = familyRepo.Update(ctx, family); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return link, nil
}
