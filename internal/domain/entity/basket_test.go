package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

func TestBasket_ConteosSiemprePositivos(t *testing.T) {
	b := entity.NewBasket("basket-1")

	b.AddProduct("prod-1", 3)
	b.AddProduct("prod-1", 2)
	assert.Equal(t, 5, b.Count("prod-1"))

	// Conteos no positivos se ignoran.
	b.AddProduct("prod-1", 0)
	b.AddProduct("prod-1", -4)
	assert.Equal(t, 5, b.Count("prod-1"))

	// Llegar a cero (o menos) elimina la entrada.
	b.RemoveProduct("prod-1", 5)
	assert.Zero(t, b.Count("prod-1"))
	assert.Empty(t, b.Items())

	// Quitar un producto ausente no hace nada.
	b.RemoveProduct("prod-404", 1)
	assert.Empty(t, b.Items())
}

func TestBasket_ItemsDevuelveCopia(t *testing.T) {
	b := entity.NewBasket("basket-1")
	b.AddProduct("prod-1", 2)

	items := b.Items()
	items["prod-1"] = 99
	assert.Equal(t, 2, b.Count("prod-1"))
}

func TestBasket_Assigned(t *testing.T) {
	b := entity.NewBasket("basket-1")
	assert.False(t, b.Assigned())

	b.CustomerID = "cust-1"
	assert.True(t, b.Assigned())

	b.Clear()
	assert.True(t, b.Assigned(), "Clear vacía el contenido pero no desasigna")
}
