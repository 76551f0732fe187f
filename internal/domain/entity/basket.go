package entity

// Basket es un multiconjunto de (productID, count) de un cliente.
// Puede existir sin asignar; CustomerID y StoreID son claves de búsqueda no
// propietarias ("" = sin asignar). Invariante: todos los conteos > 0 (un
// conteo que llega a cero elimina la entrada).
type Basket struct {
	ID         string
	CustomerID string
	StoreID    string

	items map[string]int
}

// NewBasket construye un basket vacío y sin asignar.
func NewBasket(id string) *Basket {
	return &Basket{ID: id, items: make(map[string]int)}
}

// Clone devuelve una copia desconectada del basket y su contenido.
func (b *Basket) Clone() *Basket {
	c := NewBasket(b.ID)
	c.CustomerID = b.CustomerID
	c.StoreID = b.StoreID
	for id, count := range b.items {
		c.items[id] = count
	}
	return c
}

// AddProduct incrementa el conteo del producto.
func (b *Basket) AddProduct(productID string, count int) {
	if count <= 0 {
		return
	}
	b.items[productID] += count
}

// RemoveProduct decrementa el conteo del producto; si llega a cero o menos,
// elimina la entrada.
func (b *Basket) RemoveProduct(productID string, count int) {
	if count <= 0 {
		return
	}
	current, ok := b.items[productID]
	if !ok {
		return
	}
	current -= count
	if current <= 0 {
		delete(b.items, productID)
		return
	}
	b.items[productID] = current
}

// Clear vacía el contenido del basket.
func (b *Basket) Clear() {
	b.items = make(map[string]int)
}

// Items devuelve una copia del contenido (productID -> count).
func (b *Basket) Items() map[string]int {
	out := make(map[string]int, len(b.items))
	for id, count := range b.items {
		out[id] = count
	}
	return out
}

// Count devuelve el conteo de un producto (0 si no está).
func (b *Basket) Count(productID string) int {
	return b.items[productID]
}

// Assigned indica si el basket tiene cliente asignado.
func (b *Basket) Assigned() bool {
	return b.CustomerID != ""
}
