package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/pkg/errs"
)

// UpsertMachineFamilyCommandHandler writes a machine family keyed by name.
// Default accessory links are left as they are.
type UpsertMachineFamilyCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpsertMachineFamilyCommandHandler(uowFactory CatalogUoWFactory) UpsertMachineFamilyCommandHandler {
	return UpsertMachineFamilyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpsertMachineFamilyCommandHandler) Handle(
	ctx context.Context,
	cmd UpsertMachineFamilyCommand,
) (*catalog.MachineFamily, error) {
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

	repo := uow.MachineFamilyRepository()
	family, err := repo.GetByName(ctx, cmd.Name())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		family, err = catalog.NewMachineFamily(
			cmd.FamilyID(), cmd.Name(), cmd.Description(), cmd.IsProduct(), cmd.BasePrice(),
		)
		if err != nil {
			return nil, err
		}
		err = repo.Add(ctx, family)
	case err == nil:
		if err = family.UpdateDetails(cmd.Description(), cmd.IsProduct(), cmd.BasePrice()); err != nil {
			return nil, err
		}
		err = repo.Update(ctx, family)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return family, nil
}
