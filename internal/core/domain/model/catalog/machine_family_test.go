package catalog_test

import (
	"testing"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFamily(t *testing.T) *catalog.MachineFamily {
	t.Helper()
	price, err := kernel.MoneyFromString("15000")
	require.NoError(t, err)
	f, err := catalog.NewMachineFamily(kernel.NewUUID(), "UTM", "Universal testing machine", true, price)
	require.NoError(t, err)
	return f
}

func TestNewMachineFamily(t *testing.T) {
	t.Run("valid family", func(t *testing.T) {
		f := newFamily(t)

		require.NoError(t, f.Validate())
		assert.Equal(t, "UTM", f.Name())
		assert.True(t, f.IsProduct())
		assert.Equal(t, "15000.00", f.BasePrice().String())
		assert.Empty(t, f.DefaultAccessories())
	})

	t.Run("requires name and constructed price", func(t *testing.T) {
		_, err := catalog.NewMachineFamily(kernel.NewUUID(), " ", "", true, kernel.Money{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMachineFamily_LinkAccessory(t *testing.T) {
	t.Run("relinking the same accessory updates instead of duplicating", func(t *testing.T) {
		f := newFamily(t)
		accessoryID := kernel.NewUUID()

		first, err := f.LinkAccessory(kernel.NewUUID(), accessoryID, catalog.LinkTerms{DefaultQuantity: 1})
		require.NoError(t, err)

		second, err := f.LinkAccessory(kernel.NewUUID(), accessoryID, catalog.LinkTerms{
			DefaultQuantity:       2,
			IsRequiredForDispatch: true,
		})
		require.NoError(t, err)

		links := f.DefaultAccessories()
		require.Len(t, links, 1)
		assert.True(t, first.ID().IsEqual(second.ID()))
		assert.Equal(t, 2, links[0].DefaultQuantity())
		assert.True(t, links[0].IsRequiredForDispatch())
	})

	t.Run("keeps link order", func(t *testing.T) {
		f := newFamily(t)
		a, b := kernel.NewUUID(), kernel.NewUUID()

		_, err := f.LinkAccessory(kernel.NewUUID(), a, catalog.LinkTerms{DefaultQuantity: 1})
		require.NoError(t, err)
		_, err = f.LinkAccessory(kernel.NewUUID(), b, catalog.LinkTerms{
			DefaultQuantity:     1,
			IsVariable:          true,
			VariablePlaceholder: "Gearbox Model : ____",
		})
		require.NoError(t, err)

		links := f.DefaultAccessories()
		require.Len(t, links, 2)
		assert.True(t, links[0].AccessoryID().IsEqual(a))
		assert.True(t, links[1].AccessoryID().IsEqual(b))
		assert.Equal(t, "Gearbox Model : ____", links[1].VariablePlaceholder())
		assert.Less(t, links[0].Position(), links[1].Position())
	})

	t.Run("rejects invalid link attributes", func(t *testing.T) {
		f := newFamily(t)

		_, err := f.LinkAccessory(kernel.NewUUID(), kernel.NewUUID(), catalog.LinkTerms{DefaultQuantity: 0})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = f.LinkAccessory(kernel.NewUUID(), kernel.NewUUID(), catalog.LinkTerms{
			DefaultQuantity:     1,
			VariablePlaceholder: "Serial : ____",
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, f.DefaultAccessories())
	})
}

func TestMachineFamily_UnlinkAccessory(t *testing.T) {
	f := newFamily(t)
	accessoryID := kernel.NewUUID()
	_, err := f.LinkAccessory(kernel.NewUUID(), accessoryID, catalog.LinkTerms{DefaultQuantity: 1})
	require.NoError(t, err)

	require.NoError(t, f.UnlinkAccessory(accessoryID))
	assert.Empty(t, f.DefaultAccessories())
	require.ErrorIs(t, f.UnlinkAccessory(accessoryID), errs.ErrObjectNotFound)
}

func TestMachineFamily_UpdateDetails(t *testing.T) {
	f := newFamily(t)
	price, err := kernel.MoneyFromString("0")
	require.NoError(t, err)

	require.NoError(t, f.UpdateDetails("Documents bundle", false, price))
	assert.False(t, f.IsProduct())
	assert.Equal(t, "Documents bundle", f.Description())
	assert.Equal(t, "UTM", f.Name())
}

func TestRestoreMachineFamily_SortsLinksByPosition(t *testing.T) {
	price, err := kernel.MoneyFromString("10")
	require.NoError(t, err)
	late, err := catalog.RestoreDefaultAccessory(kernel.NewUUID(), kernel.NewUUID(), 5, catalog.LinkTerms{DefaultQuantity: 1})
	require.NoError(t, err)
	early, err := catalog.RestoreDefaultAccessory(kernel.NewUUID(), kernel.NewUUID(), 2, catalog.LinkTerms{DefaultQuantity: 3})
	require.NoError(t, err)

	f, err := catalog.RestoreMachineFamily(kernel.NewUUID(), "Wedge Grip Set", "", true, price,
		[]*catalog.DefaultAccessory{late, early}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Version())

	links := f.DefaultAccessories()
	assert.Equal(t, 2, links[0].Position())
	assert.Equal(t, 5, links[1].Position())

	next, err := f.LinkAccessory(kernel.NewUUID(), kernel.NewUUID(), catalog.LinkTerms{DefaultQuantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 6, next.Position())
}
