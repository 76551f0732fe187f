package store_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/store"
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de persistencia con inyección de fallos
// ──────────────────────────────────────────────────────────────────────────────

type fakeDataStore struct {
	stores    []repository.StoreRecord
	products  []repository.ProductRecord
	customers []repository.CustomerRecord

	savedStores    []repository.StoreRecord
	savedInventory []repository.InventoryRecord
	savedBaskets   []repository.BasketRecord

	failSaveStore     error
	failSaveInventory error
	failDelete        error
	deleteFound       bool
	deleted           []string
}

func newFakeDataStore() *fakeDataStore {
	return &fakeDataStore{deleteFound: true}
}

func (f *fakeDataStore) FindAllStores() ([]repository.StoreRecord, error)       { return f.stores, nil }
func (f *fakeDataStore) FindAllProducts() ([]repository.ProductRecord, error)   { return f.products, nil }
func (f *fakeDataStore) FindAllCustomers() ([]repository.CustomerRecord, error) { return f.customers, nil }

func (f *fakeDataStore) SaveStore(rec repository.StoreRecord) error {
	if f.failSaveStore != nil {
		return f.failSaveStore
	}
	f.savedStores = append(f.savedStores, rec)
	return nil
}

func (f *fakeDataStore) SaveProduct(rec repository.ProductRecord) error   { return nil }
func (f *fakeDataStore) SaveCustomer(rec repository.CustomerRecord) error { return nil }

func (f *fakeDataStore) SaveInventory(rec repository.InventoryRecord) error {
	if f.failSaveInventory != nil {
		return f.failSaveInventory
	}
	f.savedInventory = append(f.savedInventory, rec)
	return nil
}

func (f *fakeDataStore) SaveBasket(rec repository.BasketRecord) error {
	f.savedBaskets = append(f.savedBaskets, rec)
	return nil
}

func (f *fakeDataStore) SaveDevice(rec repository.DeviceRecord) error { return nil }

func (f *fakeDataStore) DeleteStore(id string) (bool, error) {
	if f.failDelete != nil {
		return false, f.failDelete
	}
	f.deleted = append(f.deleted, id)
	return f.deleteFound, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newService(t *testing.T) *store.Service {
	t.Helper()
	svc, err := store.New(nil, nil)
	require.NoError(t, err)
	return svc
}

// provisionChain monta store → aisle → shelf (AMBIENT) → product (AMBIENT).
func provisionChain(t *testing.T, svc *store.Service) {
	t.Helper()
	_, err := svc.ProvisionStore("store-1", "Centro", "Calle 1 #2-3")
	require.NoError(t, err)
	_, err = svc.ProvisionAisle("store-1", "aisle-1", "Lácteos", "pasillo principal", entity.AisleLocationFloor)
	require.NoError(t, err)
	_, err = svc.ProvisionShelf("store-1", "aisle-1", "shelf-1", "Estante bajo",
		entity.ShelfLevelLow, "", entity.TemperatureAmbient)
	require.NoError(t, err)
	_, err = svc.ProvisionProduct("prod-1", "Galletas", "", "500g", "snacks",
		decimal.NewFromFloat(3.50), entity.TemperatureAmbient)
	require.NoError(t, err)
}

func assertKind(t *testing.T, err error, want domain.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, domain.KindOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stores
// ──────────────────────────────────────────────────────────────────────────────

func TestProvisionStore_IdDuplicadoEsConflicto(t *testing.T) {
	svc := newService(t)

	_, err := svc.ProvisionStore("store-1", "Centro", "Calle 1")
	require.NoError(t, err)

	_, err = svc.ProvisionStore("store-1", "Otro", "Calle 2")
	assertKind(t, err, domain.KindConflict)
	assert.EqualError(t, err, "Provision Store: Store Already Exists")
}

func TestProvisionStore_FalloDePersistenciaNoRevierte(t *testing.T) {
	fake := newFakeDataStore()
	fake.failSaveStore = errors.New("connection refused")
	svc, err := store.New(fake, nil)
	require.NoError(t, err)

	_, err = svc.ProvisionStore("store-1", "Centro", "Calle 1")
	assertKind(t, err, domain.KindPersistenceFailure)

	// Sin rollback: el store queda registrado en memoria aunque no se persistió.
	assert.True(t, svc.StoreExists("store-1"))
}

func TestDeleteStore_FalloDePersistenciaReinsertaElStore(t *testing.T) {
	fake := newFakeDataStore()
	svc, err := store.New(fake, nil)
	require.NoError(t, err)
	_, err = svc.ProvisionStore("store-1", "Centro", "Calle 1")
	require.NoError(t, err)

	fake.failDelete = errors.New("deadlock detected")
	err = svc.DeleteStore("store-1")
	assertKind(t, err, domain.KindPersistenceFailure)

	// Rollback compensatorio: el store sigue disponible.
	st, err := svc.ShowStore("store-1")
	require.NoError(t, err)
	assert.Equal(t, "Centro", st.Name)
}

func TestDeleteStore_FilaInexistenteEnDBTambienReinserta(t *testing.T) {
	fake := newFakeDataStore()
	svc, err := store.New(fake, nil)
	require.NoError(t, err)
	_, err = svc.ProvisionStore("store-1", "Centro", "Calle 1")
	require.NoError(t, err)

	fake.deleteFound = false
	err = svc.DeleteStore("store-1")
	assertKind(t, err, domain.KindPersistenceFailure)
	assert.True(t, svc.StoreExists("store-1"))
}

func TestUpdateStore_ArgumentosNilNoSobreescriben(t *testing.T) {
	svc := newService(t)
	_, err := svc.ProvisionStore("store-1", "Centro", "Calle 1")
	require.NoError(t, err)

	desc := "sucursal principal"
	st, err := svc.UpdateStore("store-1", &desc, nil)
	require.NoError(t, err)
	assert.Equal(t, "sucursal principal", st.Description)
	assert.Equal(t, "Calle 1", st.Address)
}

func TestShowAisle_StoreInexistente(t *testing.T) {
	svc := newService(t)
	_, err := svc.ShowAisle("nope", "aisle-1")
	assertKind(t, err, domain.KindNotFound)
	assert.EqualError(t, err, "Show Aisle: Store Does Not Exist")
}

func TestShowStore_DevuelveSnapshotDesconectado(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	before, err := svc.ShowStore("store-1")
	require.NoError(t, err)
	require.Len(t, before.Aisles(), 1)

	_, err = svc.ProvisionAisle("store-1", "aisle-2", "Bebidas", "", entity.AisleLocationFloor)
	require.NoError(t, err)

	// El snapshot previo no ve mutaciones posteriores del registro.
	assert.Len(t, before.Aisles(), 1)

	after, err := svc.ShowStore("store-1")
	require.NoError(t, err)
	assert.Len(t, after.Aisles(), 2)
}

func TestShowStore_LecturasConcurrentesConComandos(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := svc.ProvisionAisle("store-1", fmt.Sprintf("aisle-%d-%d", w, i),
					"Pasillo", "", entity.AisleLocationFloor)
				assert.NoError(t, err)
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				st, err := svc.ShowStore("store-1")
				assert.NoError(t, err)
				_ = dto.ToStoreResponse(st)

				all := svc.GetAllStores()
				for _, s := range all {
					_ = dto.ToStoreResponse(s)
				}
			}
		}()
	}
	wg.Wait()
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventory
// ──────────────────────────────────────────────────────────────────────────────

func TestProvisionInventory_CadenaCompleta(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	inv, err := svc.ProvisionInventory("inv-1", "store-1", "aisle-1", "shelf-1",
		100, 40, "prod-1", entity.InventoryTypeOnFloor)
	require.NoError(t, err)
	assert.Equal(t, 40, inv.Count)

	// El slot queda visible desde el registro, el shelf y el store.
	got, err := svc.ShowInventory("inv-1")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)
	assert.Equal(t, 40, got.Count)

	shelf, err := svc.ShowShelf("store-1", "aisle-1", "shelf-1")
	require.NoError(t, err)
	require.NotNil(t, shelf.GetInventory("inv-1"))
	assert.Equal(t, 40, shelf.GetInventory("inv-1").Count)

	st, err := svc.ShowStore("store-1")
	require.NoError(t, err)
	assert.Len(t, st.Inventories(), 1)
}

func TestProvisionInventory_TemperaturaInconsistenteNoMuta(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionProduct("prod-frozen", "Helado", "", "1L", "congelados",
		decimal.NewFromFloat(8.90), entity.TemperatureFrozen)
	require.NoError(t, err)

	_, err = svc.ProvisionInventory("inv-1", "store-1", "aisle-1", "shelf-1",
		100, 10, "prod-frozen", entity.InventoryTypeOnFloor)
	assertKind(t, err, domain.KindPreconditionFailed)
	assert.EqualError(t, err, "Provision Inventory: Product and Shelf Temperature Is Not Consistent")

	// La validación corre antes de cualquier mutación.
	_, err = svc.ShowInventory("inv-1")
	assertKind(t, err, domain.KindNotFound)
	shelf, err := svc.ShowShelf("store-1", "aisle-1", "shelf-1")
	require.NoError(t, err)
	assert.Empty(t, shelf.Inventories())
}

func TestProvisionInventory_IdDuplicadoEsConflicto(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	_, err := svc.ProvisionInventory("inv-1", "store-1", "aisle-1", "shelf-1",
		100, 10, "prod-1", entity.InventoryTypeOnFloor)
	require.NoError(t, err)

	_, err = svc.ProvisionInventory("inv-1", "store-1", "aisle-1", "shelf-1",
		50, 5, "prod-1", entity.InventoryTypeInStockroom)
	assertKind(t, err, domain.KindConflict)
}

func TestProvisionInventory_ConteoInicialFueraDeRango(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	_, err := svc.ProvisionInventory("inv-1", "store-1", "aisle-1", "shelf-1",
		10, 11, "prod-1", entity.InventoryTypeOnFloor)
	assertKind(t, err, domain.KindPreconditionFailed)
}

func TestUpdateInventory_DeltaRespetandoLimites(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionInventory("inv-1", "store-1", "aisle-1", "shelf-1",
		100, 40, "prod-1", entity.InventoryTypeOnFloor)
	require.NoError(t, err)

	inv, err := svc.UpdateInventory("inv-1", -15)
	require.NoError(t, err)
	assert.Equal(t, 25, inv.Count)

	inv, err = svc.UpdateInventory("inv-1", 75)
	require.NoError(t, err)
	assert.Equal(t, 100, inv.Count)

	// Exceder la capacidad falla sin mutar.
	_, err = svc.UpdateInventory("inv-1", 1)
	assertKind(t, err, domain.KindPreconditionFailed)
	got, err := svc.ShowInventory("inv-1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Count)

	// El conteo nunca baja de cero.
	_, err = svc.UpdateInventory("inv-1", -101)
	assertKind(t, err, domain.KindPreconditionFailed)
	got, err = svc.ShowInventory("inv-1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Count)
}

// ──────────────────────────────────────────────────────────────────────────────
// Customers
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateCustomer_PrimeraAsignacionSellaLastSeen(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionCustomer("cust-1", "Ana", "García",
		entity.CustomerTypeRegistered, "ana@example.com", "Calle 9")
	require.NoError(t, err)

	customer, err := svc.UpdateCustomer("cust-1", "store-1", "aisle-1")
	require.NoError(t, err)
	require.NotNil(t, customer.StoreLocation)
	assert.Equal(t, "store-1", customer.StoreLocation.StoreID)
	assert.Equal(t, "aisle-1", customer.StoreLocation.AisleNumber)
	assert.NotNil(t, customer.LastSeen)
}

func TestUpdateCustomer_TransferenciaVaciaBasketYMembresia(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	// Segundo store destino.
	_, err := svc.ProvisionStore("store-2", "Norte", "Av 68")
	require.NoError(t, err)
	_, err = svc.ProvisionAisle("store-2", "aisle-9", "Entrada", "", entity.AisleLocationFloor)
	require.NoError(t, err)

	_, err = svc.ProvisionCustomer("cust-1", "Ana", "García",
		entity.CustomerTypeRegistered, "ana@example.com", "Calle 9")
	require.NoError(t, err)
	_, err = svc.UpdateCustomer("cust-1", "store-1", "aisle-1")
	require.NoError(t, err)

	// Basket asignado con contenido.
	_, err = svc.ProvisionBasket("basket-1")
	require.NoError(t, err)
	_, err = svc.AssignCustomerBasket("cust-1", "basket-1")
	require.NoError(t, err)
	_, err = svc.AddBasketProduct("basket-1", "prod-1", 3)
	require.NoError(t, err)

	// Transferencia a store-2.
	customer, err := svc.UpdateCustomer("cust-1", "store-2", "aisle-9")
	require.NoError(t, err)

	// El basket quedó vacío y desasignado; el cliente sin basket ni lastSeen.
	assert.Empty(t, customer.BasketID)
	assert.Nil(t, customer.LastSeen)
	require.NotNil(t, customer.StoreLocation)
	assert.Equal(t, "store-2", customer.StoreLocation.StoreID)

	basket, err := svc.ShowBasket("basket-1")
	require.NoError(t, err)
	assert.Empty(t, basket.Items())
	assert.False(t, basket.Assigned())
	assert.Empty(t, basket.StoreID)

	// La membresía vive solo en el store destino.
	st2, err := svc.ShowStore("store-2")
	require.NoError(t, err)
	assert.NotNil(t, st2.GetCustomer("cust-1"))
	st1, err := svc.ShowStore("store-1")
	require.NoError(t, err)
	assert.Nil(t, st1.GetCustomer("cust-1"))
	assert.Empty(t, st1.Baskets())
}

func TestUpdateCustomer_AisleInexistente(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionCustomer("cust-1", "Ana", "García",
		entity.CustomerTypeGuest, "", "")
	require.NoError(t, err)

	_, err = svc.UpdateCustomer("cust-1", "store-1", "aisle-404")
	assertKind(t, err, domain.KindNotFound)
	assert.EqualError(t, err, "Update Customer: Aisle Does Not Exist")
}

// ──────────────────────────────────────────────────────────────────────────────
// Baskets
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignCustomerBasket_ClienteSinUbicacionFalla(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionCustomer("cust-1", "Ana", "García",
		entity.CustomerTypeRegistered, "", "")
	require.NoError(t, err)
	_, err = svc.ProvisionBasket("basket-1")
	require.NoError(t, err)

	_, err = svc.AssignCustomerBasket("cust-1", "basket-1")
	assertKind(t, err, domain.KindPreconditionFailed)
	assert.EqualError(t, err, "Assign Customer Basket: Customer Has No Store Location")
}

func TestAssignCustomerBasket_VinculoBidireccional(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionCustomer("cust-1", "Ana", "García",
		entity.CustomerTypeRegistered, "", "")
	require.NoError(t, err)
	_, err = svc.UpdateCustomer("cust-1", "store-1", "aisle-1")
	require.NoError(t, err)
	_, err = svc.ProvisionBasket("basket-1")
	require.NoError(t, err)

	basket, err := svc.AssignCustomerBasket("cust-1", "basket-1")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", basket.CustomerID)
	assert.Equal(t, "store-1", basket.StoreID)

	customer, err := svc.ShowCustomer("cust-1")
	require.NoError(t, err)
	assert.Equal(t, "basket-1", customer.BasketID)

	got, err := svc.GetCustomerBasket("cust-1")
	require.NoError(t, err)
	assert.Equal(t, basket.ID, got.ID)
	assert.Equal(t, "cust-1", got.CustomerID)

	st, err := svc.ShowStore("store-1")
	require.NoError(t, err)
	assert.Len(t, st.Baskets(), 1)
}

func TestGetCustomerBasket_SinBasketAsignado(t *testing.T) {
	svc := newService(t)
	_, err := svc.ProvisionCustomer("cust-1", "Ana", "García",
		entity.CustomerTypeGuest, "", "")
	require.NoError(t, err)

	_, err = svc.GetCustomerBasket("cust-1")
	assertKind(t, err, domain.KindNotFound)
	assert.EqualError(t, err, "Get Customer Basket: Customer Does Not Have a Basket")
}

func TestBasket_OperacionesRequierenAsignacion(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionBasket("basket-1")
	require.NoError(t, err)

	_, err = svc.AddBasketProduct("basket-1", "prod-1", 2)
	assertKind(t, err, domain.KindPreconditionFailed)
	assert.EqualError(t, err, "Add Basket Product: Basket Has Not Being Assigned")

	_, err = svc.RemoveBasketProduct("basket-1", "prod-1", 1)
	assertKind(t, err, domain.KindPreconditionFailed)

	// La existencia del producto se valida antes que la asignación: un producto
	// inexistente sobre un basket sin asignar reporta NotFound.
	_, err = svc.AddBasketProduct("basket-1", "prod-404", 1)
	assertKind(t, err, domain.KindNotFound)
	assert.EqualError(t, err, "Add Basket Product: Product Does Not Exist")

	_, err = svc.ClearBasket("basket-1")
	assertKind(t, err, domain.KindPreconditionFailed)

	// ShowBasket es la única operación que admite baskets sin asignar.
	basket, err := svc.ShowBasket("basket-1")
	require.NoError(t, err)
	assert.False(t, basket.Assigned())
}

func TestBasket_AgregarYQuitarProductos(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)
	_, err := svc.ProvisionCustomer("cust-1", "Ana", "García",
		entity.CustomerTypeRegistered, "", "")
	require.NoError(t, err)
	_, err = svc.UpdateCustomer("cust-1", "store-1", "aisle-1")
	require.NoError(t, err)
	_, err = svc.ProvisionBasket("basket-1")
	require.NoError(t, err)
	_, err = svc.AssignCustomerBasket("cust-1", "basket-1")
	require.NoError(t, err)

	_, err = svc.AddBasketProduct("basket-1", "prod-1", 3)
	require.NoError(t, err)
	basket, err := svc.AddBasketProduct("basket-1", "prod-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 5, basket.Count("prod-1"))

	// Quitar más unidades de las presentes elimina la entrada.
	basket, err = svc.RemoveBasketProduct("basket-1", "prod-1", 10)
	require.NoError(t, err)
	assert.Zero(t, basket.Count("prod-1"))
	assert.Empty(t, basket.Items())

	// Producto inexistente en el catálogo.
	_, err = svc.AddBasketProduct("basket-1", "prod-404", 1)
	assertKind(t, err, domain.KindNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Devices
// ──────────────────────────────────────────────────────────────────────────────

func TestProvisionDevice_TipoDesconocidoFalla(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	_, err := svc.ProvisionDevice("dev-1", "Misterio", "TOASTER", "store-1", "aisle-1")
	assertKind(t, err, domain.KindPreconditionFailed)
	assert.EqualError(t, err, "Provision Device: Device Type Is Not Recognized")
}

func TestDevice_SensorProduceEventosPeroNoAceptaComandos(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	device, err := svc.ProvisionDevice("cam-1", "Cámara entrada", "CAMERA", "store-1", "aisle-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceKindSensor, device.Kind)

	require.NoError(t, svc.RaiseEvent("cam-1", "motion detected"))

	err = svc.IssueCommand("cam-1", "open")
	assertKind(t, err, domain.KindPreconditionFailed)
	assert.EqualError(t, err, "Issue Command: Device Is Not An Appliance")
}

func TestDevice_ApplianceAceptaEventosYComandos(t *testing.T) {
	svc := newService(t)
	provisionChain(t, svc)

	device, err := svc.ProvisionDevice("rob-1", "Robot limpieza", "ROBOT", "store-1", "aisle-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceKindAppliance, device.Kind)

	require.NoError(t, svc.RaiseEvent("rob-1", "battery low"))
	require.NoError(t, svc.IssueCommand("rob-1", "clean aisle"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_CargaSnapshotsYReadjuntaClientes(t *testing.T) {
	storeID := "store-1"
	aisleNumber := "aisle-1"
	fake := newFakeDataStore()
	fake.stores = []repository.StoreRecord{
		{ID: "store-1", Name: "Centro", Address: "Calle 1", Description: "principal"},
	}
	fake.products = []repository.ProductRecord{
		{ID: "prod-1", Name: "Galletas", Price: decimal.NewFromFloat(3.50), Temperature: "AMBIENT"},
	}
	fake.customers = []repository.CustomerRecord{
		{ID: "cust-1", FirstName: "Ana", LastName: "García", Type: "REGISTERED",
			StoreID: &storeID, AisleNumber: &aisleNumber},
		{ID: "cust-2", FirstName: "Luis", LastName: "Rojas", Type: "GUEST"},
	}

	svc, err := store.New(fake, nil)
	require.NoError(t, err)

	st, err := svc.ShowStore("store-1")
	require.NoError(t, err)
	assert.Equal(t, "principal", st.Description)
	assert.NotNil(t, st.GetCustomer("cust-1"))

	customer, err := svc.ShowCustomer("cust-1")
	require.NoError(t, err)
	require.NotNil(t, customer.StoreLocation)
	assert.Equal(t, "aisle-1", customer.StoreLocation.AisleNumber)

	// Cliente sin store asignado se carga sin ubicación.
	customer2, err := svc.ShowCustomer("cust-2")
	require.NoError(t, err)
	assert.Nil(t, customer2.StoreLocation)

	product, err := svc.ShowProduct("prod-1")
	require.NoError(t, err)
	assert.Equal(t, entity.TemperatureAmbient, product.Temperature)
}

func TestNew_TemperaturaInvalidaEnSnapshotEsFatal(t *testing.T) {
	fake := newFakeDataStore()
	fake.products = []repository.ProductRecord{
		{ID: "prod-1", Name: "Galletas", Temperature: "LUKEWARM"},
	}

	_, err := store.New(fake, nil)
	assertKind(t, err, domain.KindPersistenceFailure)
}
