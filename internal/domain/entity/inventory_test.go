package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

func testLocation() entity.InventoryLocation {
	return entity.NewInventoryLocation("store-1", "aisle-1", "shelf-1")
}

func TestNewInventory_ValidaConteoInicial(t *testing.T) {
	inv, err := entity.NewInventory("inv-1", testLocation(), 100, 40, "prod-1", entity.InventoryTypeOnFloor)
	require.NoError(t, err)
	assert.Equal(t, 40, inv.Count)

	_, err = entity.NewInventory("inv-2", testLocation(), 10, 11, "prod-1", entity.InventoryTypeOnFloor)
	assert.Error(t, err, "conteo mayor a la capacidad")

	_, err = entity.NewInventory("inv-3", testLocation(), 10, -1, "prod-1", entity.InventoryTypeOnFloor)
	assert.Error(t, err, "conteo negativo")

	_, err = entity.NewInventory("inv-4", testLocation(), -5, 0, "prod-1", entity.InventoryTypeOnFloor)
	assert.Error(t, err, "capacidad negativa")
}

func TestInventory_AdjustMantieneInvariante(t *testing.T) {
	inv, err := entity.NewInventory("inv-1", testLocation(), 100, 40, "prod-1", entity.InventoryTypeInStockroom)
	require.NoError(t, err)

	require.NoError(t, inv.Adjust(60))
	assert.Equal(t, 100, inv.Count)

	// Una violación falla sin mutar.
	assert.Error(t, inv.Adjust(1))
	assert.Equal(t, 100, inv.Count)

	require.NoError(t, inv.Adjust(-100))
	assert.Equal(t, 0, inv.Count)

	assert.Error(t, inv.Adjust(-1))
	assert.Equal(t, 0, inv.Count)
}

func TestParseInventoryType(t *testing.T) {
	got, err := entity.ParseInventoryType("ON_FLOOR")
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryTypeOnFloor, got)

	_, err = entity.ParseInventoryType("UNDERGROUND")
	assert.Error(t, err)
}
