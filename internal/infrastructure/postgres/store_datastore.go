package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/store-api/internal/domain/repository"
)

var _ repository.StoreDataStore = (*StoreDataStore)(nil)

// StoreDataStore implementación del colaborador de persistencia sobre
// PostgreSQL. Cada Save* es un upsert con la fila denormalizada completa; el
// servicio es la fuente de verdad en memoria y esta capa solo la refleja.
type StoreDataStore struct {
	pool *pgxpool.Pool
}

// NewStoreDataStore construye el adaptador de persistencia.
func NewStoreDataStore(pool *pgxpool.Pool) *StoreDataStore {
	return &StoreDataStore{pool: pool}
}

// FindAllStores devuelve el snapshot completo de stores.
func (r *StoreDataStore) FindAllStores() ([]repository.StoreRecord, error) {
	query := `
		SELECT id, name, address, COALESCE(description, '')
		FROM stores`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("find stores: %w", err)
	}
	defer rows.Close()
	var list []repository.StoreRecord
	for rows.Next() {
		var rec repository.StoreRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Address, &rec.Description); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// FindAllProducts devuelve el snapshot completo de productos.
func (r *StoreDataStore) FindAllProducts() ([]repository.ProductRecord, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), COALESCE(size, ''),
		       COALESCE(category, ''), price, temperature
		FROM products`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductRecord
	for rows.Next() {
		var rec repository.ProductRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Size,
			&rec.Category, &rec.Price, &rec.Temperature); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// FindAllCustomers devuelve el snapshot completo de clientes con su ubicación
// (anulable) y last_seen.
func (r *StoreDataStore) FindAllCustomers() ([]repository.CustomerRecord, error) {
	query := `
		SELECT id, first_name, last_name, customer_type, COALESCE(email, ''),
		       COALESCE(account_address, ''), store_id, aisle_number, last_seen
		FROM customers`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerRecord
	for rows.Next() {
		var rec repository.CustomerRecord
		if err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Type,
			&rec.Email, &rec.Address, &rec.StoreID, &rec.AisleNumber, &rec.LastSeen); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// SaveStore hace upsert de la fila del store.
func (r *StoreDataStore) SaveStore(rec repository.StoreRecord) error {
	query := `
		INSERT INTO stores (id, name, address, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			description = EXCLUDED.description`
	_, err := r.pool.Exec(context.Background(), query,
		rec.ID, rec.Name, rec.Address, rec.Description)
	if err != nil {
		return fmt.Errorf("upsert store: %w", err)
	}
	return nil
}

// SaveProduct hace upsert de la fila del producto.
func (r *StoreDataStore) SaveProduct(rec repository.ProductRecord) error {
	query := `
		INSERT INTO products (id, name, description, size, category, price, temperature)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			size = EXCLUDED.size,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			temperature = EXCLUDED.temperature`
	_, err := r.pool.Exec(context.Background(), query,
		rec.ID, rec.Name, rec.Description, rec.Size, rec.Category, rec.Price, rec.Temperature)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// SaveCustomer hace upsert de la fila del cliente (ubicación y last_seen
// anulables).
func (r *StoreDataStore) SaveCustomer(rec repository.CustomerRecord) error {
	query := `
		INSERT INTO customers (id, first_name, last_name, customer_type, email,
		                       account_address, store_id, aisle_number, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			customer_type = EXCLUDED.customer_type,
			email = EXCLUDED.email,
			account_address = EXCLUDED.account_address,
			store_id = EXCLUDED.store_id,
			aisle_number = EXCLUDED.aisle_number,
			last_seen = EXCLUDED.last_seen`
	_, err := r.pool.Exec(context.Background(), query,
		rec.ID, rec.FirstName, rec.LastName, rec.Type, rec.Email,
		rec.Address, rec.StoreID, rec.AisleNumber, rec.LastSeen)
	if err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}
	return nil
}

// SaveInventory hace upsert de la fila del slot de inventario.
func (r *StoreDataStore) SaveInventory(rec repository.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, store_id, aisle_number, shelf_id, capacity,
		                       count, product_id, inventory_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			store_id = EXCLUDED.store_id,
			aisle_number = EXCLUDED.aisle_number,
			shelf_id = EXCLUDED.shelf_id,
			capacity = EXCLUDED.capacity,
			count = EXCLUDED.count,
			product_id = EXCLUDED.product_id,
			inventory_type = EXCLUDED.inventory_type`
	_, err := r.pool.Exec(context.Background(), query,
		rec.ID, rec.StoreID, rec.AisleNumber, rec.ShelfID, rec.Capacity,
		rec.Count, rec.ProductID, rec.Type)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// SaveBasket hace upsert de la fila del basket (cliente y store anulables).
func (r *StoreDataStore) SaveBasket(rec repository.BasketRecord) error {
	query := `
		INSERT INTO baskets (id, customer_id, store_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			store_id = EXCLUDED.store_id`
	_, err := r.pool.Exec(context.Background(), query, rec.ID, rec.CustomerID, rec.StoreID)
	if err != nil {
		return fmt.Errorf("upsert basket: %w", err)
	}
	return nil
}

// SaveDevice hace upsert de la fila del dispositivo.
func (r *StoreDataStore) SaveDevice(rec repository.DeviceRecord) error {
	query := `
		INSERT INTO devices (id, name, device_type, store_id, aisle_number)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			device_type = EXCLUDED.device_type,
			store_id = EXCLUDED.store_id,
			aisle_number = EXCLUDED.aisle_number`
	_, err := r.pool.Exec(context.Background(), query,
		rec.ID, rec.Name, rec.Type, rec.StoreID, rec.AisleNumber)
	if err != nil {
		return fmt.Errorf("upsert device: %w", err)
	}
	return nil
}

// DeleteStore borra la fila; found=false si no existía.
func (r *StoreDataStore) DeleteStore(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete store: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
