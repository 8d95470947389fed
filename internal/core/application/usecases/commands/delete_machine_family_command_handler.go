package commands

import (
	"context"
)

// DeleteMachineFamilyCommandHandler deletes a family with its default links.
// A family still used by a line item is kept and errs.ReferentialConflictError
// is returned.
type DeleteMachineFamilyCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteMachineFamilyCommandHandler(uowFactory CatalogUoWFactory) DeleteMachineFamilyCommandHandler {
	return DeleteMachineFamilyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteMachineFamilyCommandHandler) Handle(ctx context.Context, cmd DeleteMachineFamilyCommand) error {
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

	if err := uow.MachineFamilyRepository().Delete(ctx, cmd.FamilyID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
