package inventory_test

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hardware-store/internal/application/inventory"
	"github.com/jhoicas/hardware-store/internal/domain"
	"github.com/jhoicas/hardware-store/internal/domain/entity"
	rules "github.com/jhoicas/hardware-store/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *inventory.Store {
	t.Helper()
	s, err := inventory.NewStore(nil, nil,
		inventory.WithClock(func() time.Time { return fixedNow }),
		inventory.WithIDGenerator(func() string { return "tx-1" }),
	)
	require.NoError(t, err)
	return s
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func addHardware(t *testing.T, s *inventory.Store, id, name string, qty int) {
	t.Helper()
	require.NoError(t, s.AddNewSmallHardwareItem(id, name, qty, price("1.00"), entity.CategoryFasteners))
}

// seedSale prepara el escenario: AB12C con 15 unidades, un empleado y un cliente.
func seedSale(t *testing.T) (s *inventory.Store, employeeID, customerID int) {
	t.Helper()
	s = newTestStore(t)
	require.NoError(t, s.AddNewSmallHardwareItem("AB12C", "Carriage Bolt", 10, price("2.50"), entity.CategoryFasteners))
	require.NoError(t, s.AddQuantity(s.FindItemIndex("AB12C"), 5))

	var err error
	employeeID, err = s.AddEmployee("Jane", "Doe", 123456789, price("4000"))
	require.NoError(t, err)
	customerID, err = s.AddCustomer("John", "Smith", "555-1234", "1 Main St")
	require.NoError(t, err)
	return s, employeeID, customerID
}

// ──────────────────────────────────────────────────────────────────────────────
// Artículos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddNewItem_LuegoFindItemIndex(t *testing.T) {
	s := newTestStore(t)
	ids := []string{"AAAAA", "zz999", "0a1B2", "Q1W2E"}
	for i, id := range ids {
		assert.Equal(t, -1, s.FindItemIndex(id), "el artículo no debe existir antes del alta")
		if i%2 == 0 {
			require.NoError(t, s.AddNewSmallHardwareItem(id, "Hinge", 3, price("0"), entity.CategoryDoorWindow))
		} else {
			require.NoError(t, s.AddNewAppliance(id, "Fridge", 1, price("899.99"), "Acme", entity.ApplianceRefrigerators))
		}
		idx := s.FindItemIndex(id)
		require.GreaterOrEqual(t, idx, 0)

		it, err := s.FindItem(id)
		require.NoError(t, err)
		assert.Equal(t, id, it.ID)
	}
	assert.Equal(t, len(ids), s.ItemCount())
}

func TestAddNewItem_Variantes(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddNewSmallHardwareItem("HW001", "Hinge", 3, price("1.25"), entity.CategoryCabinetFurniture))
	require.NoError(t, s.AddNewAppliance("AP001", "Washer", 2, price("500"), "Maytag", entity.ApplianceWashersDryers))

	hw, err := s.FindItem("HW001")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemKindSmallHardware, hw.Kind)
	require.NotNil(t, hw.Hardware)
	assert.Nil(t, hw.Appliance)
	assert.Equal(t, entity.CategoryCabinetFurniture, hw.Hardware.Category)

	ap, err := s.FindItem("AP001")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemKindAppliance, ap.Kind)
	require.NotNil(t, ap.Appliance)
	assert.Equal(t, "Maytag", ap.Appliance.Brand)
	assert.Equal(t, entity.ApplianceWashersDryers, ap.Appliance.Type)
}

func TestAddNewItem_RechazaEntradasInvalidas(t *testing.T) {
	s := newTestStore(t)
	addHardware(t, s, "AB12C", "Bolt", 1)

	cases := []struct {
		name string
		err  error
		run  func() error
	}{
		{"ID duplicado", domain.ErrDuplicate, func() error {
			return s.AddNewSmallHardwareItem("AB12C", "Otro", 1, price("1"), entity.CategoryOther)
		}},
		{"ID corto", domain.ErrInvalidInput, func() error {
			return s.AddNewSmallHardwareItem("AB12", "Bolt", 1, price("1"), entity.CategoryOther)
		}},
		{"ID con símbolos", domain.ErrInvalidInput, func() error {
			return s.AddNewSmallHardwareItem("AB-2C", "Bolt", 1, price("1"), entity.CategoryOther)
		}},
		{"nombre vacío", domain.ErrInvalidInput, func() error {
			return s.AddNewSmallHardwareItem("XY123", "  ", 1, price("1"), entity.CategoryOther)
		}},
		{"cantidad cero", domain.ErrInvalidInput, func() error {
			return s.AddNewSmallHardwareItem("XY123", "Bolt", 0, price("1"), entity.CategoryOther)
		}},
		{"precio negativo", domain.ErrInvalidInput, func() error {
			return s.AddNewAppliance("XY123", "Oven", 1, price("-0.01"), "GE", entity.ApplianceRangesOvens)
		}},
		{"categoría desconocida", domain.ErrInvalidInput, func() error {
			return s.AddNewSmallHardwareItem("XY123", "Bolt", 1, price("1"), entity.Category("Plumbing"))
		}},
		{"tipo desconocido", domain.ErrInvalidInput, func() error {
			return s.AddNewAppliance("XY123", "Oven", 1, price("1"), "GE", entity.ApplianceType("Toasters"))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), tc.err)
			assert.Equal(t, 1, s.ItemCount(), "la colección no debe cambiar")
		})
	}
}

func TestAddQuantity_SumaExactamente(t *testing.T) {
	s := newTestStore(t)
	addHardware(t, s, "AB12C", "Bolt", 10)
	idx := s.FindItemIndex("AB12C")

	for _, n := range []int{1, 5, 1000} {
		before, _ := s.FindItem("AB12C")
		require.NoError(t, s.AddQuantity(idx, n))
		after, _ := s.FindItem("AB12C")
		assert.Equal(t, before.Quantity+n, after.Quantity)
	}
}

func TestAddQuantity_RechazaNoPositivosEIndicesInvalidos(t *testing.T) {
	s := newTestStore(t)
	addHardware(t, s, "AB12C", "Bolt", 10)

	assert.ErrorIs(t, s.AddQuantity(0, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.AddQuantity(0, -3), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.AddQuantity(1, 3), domain.ErrStaleIndex)
	assert.ErrorIs(t, s.AddQuantity(-1, 3), domain.ErrStaleIndex)

	it, _ := s.FindItem("AB12C")
	assert.Equal(t, 10, it.Quantity)
}

func TestAddQuantity_RechazaDesbordeYConservaSnapshotValido(t *testing.T) {
	s := newTestStore(t)
	addHardware(t, s, "AB12C", "Bolt", 10)
	s.MarkSaved()

	assert.ErrorIs(t, s.AddQuantity(0, math.MaxInt), domain.ErrInvalidInput)
	assert.ErrorIs(t, s.AddQuantity(0, rules.MaxQuantity-9), domain.ErrInvalidInput)
	assert.False(t, s.Dirty(), "un rechazo no deja cambios pendientes")

	require.NoError(t, s.AddQuantity(0, rules.MaxQuantity-10))
	it, _ := s.FindItem("AB12C")
	assert.Equal(t, rules.MaxQuantity, it.Quantity)
	assert.ErrorIs(t, s.AddQuantity(0, 1), domain.ErrInvalidInput)

	_, err := inventory.NewStore(s.Snapshot(), nil)
	assert.NoError(t, err, "lo guardado se vuelve a cargar")
}

func TestAddNewItem_RechazaCantidadSobreElMaximo(t *testing.T) {
	s := newTestStore(t)
	err := s.AddNewSmallHardwareItem("AB12C", "Bolt", rules.MaxQuantity+1, price("1"), entity.CategoryOther)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, s.ItemCount())
}

func TestRemoveItem(t *testing.T) {
	s := newTestStore(t)
	addHardware(t, s, "AAAAA", "Nail", 1)
	addHardware(t, s, "BBBBB", "Bolt", 1)

	idx := s.FindItemIndex("AAAAA")
	removed, err := s.RemoveItem(idx)
	require.NoError(t, err)
	assert.Equal(t, "AAAAA", removed.ID)
	assert.Equal(t, -1, s.FindItemIndex("AAAAA"))
	assert.Equal(t, 1, s.ItemCount())

	_, err = s.FindItem("AAAAA")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.RemoveItem(5)
	assert.ErrorIs(t, err, domain.ErrStaleIndex)
	assert.Equal(t, 1, s.ItemCount())
}

func TestGetMatchingItemsByName_SinDistinguirMayusculas(t *testing.T) {
	s := newTestStore(t)
	addHardware(t, s, "AAAAA", "Bolt", 1)
	addHardware(t, s, "BBBBB", "bolt", 1)
	addHardware(t, s, "CCCCC", "Carriage Bolt", 1)
	addHardware(t, s, "DDDDD", "Nail", 1)

	out, err := s.GetMatchingItemsByName("bolt")
	require.NoError(t, err)
	assert.Contains(t, out, "AAAAA")
	assert.Contains(t, out, "BBBBB")
	assert.Contains(t, out, "CCCCC")
	assert.NotContains(t, out, "DDDDD")
	assert.NotContains(t, out, "Nail")

	out, err = s.GetMatchingItemsByName("BOLT")
	require.NoError(t, err)
	assert.Contains(t, out, "Carriage Bolt")
}

func TestGetMatchingItemsByName_SinCoincidencias(t *testing.T) {
	s := newTestStore(t)
	addHardware(t, s, "DDDDD", "Nail", 1)

	out, err := s.GetMatchingItemsByName("screw")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, out)
}

func TestSortItemList_AscendenteEIdempotente(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"ZZZZZ", "b0000", "A0000", "a0000", "00001"} {
		addHardware(t, s, id, "Item "+id, 1)
	}

	s.SortItemList()
	first := s.GetAllItemsFormatted()
	var got []string
	for _, it := range s.Items() {
		got = append(got, it.ID)
	}
	// Orden de bytes: dígitos < mayúsculas < minúsculas.
	assert.Equal(t, []string{"00001", "A0000", "ZZZZZ", "a0000", "b0000"}, got)

	s.SortItemList()
	assert.Equal(t, first, s.GetAllItemsFormatted())

	pos := func(id string) int { return strings.Index(first, id) }
	assert.Less(t, pos("00001"), pos("A0000"))
	assert.Less(t, pos("ZZZZZ"), pos("a0000"))
}

func TestGetAllItemsFormatted_MuestraVariantes(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddNewSmallHardwareItem("HW001", "Hinge", 3, price("1.5"), entity.CategoryDoorWindow))
	require.NoError(t, s.AddNewAppliance("AP001", "Range", 2, price("650"), "GE", entity.ApplianceRangesOvens))

	out := s.GetAllItemsFormatted()
	assert.Contains(t, out, "Door&Window")
	assert.Contains(t, out, "GE, Ranges&Ovens")
	assert.Contains(t, out, "$1.50")
	assert.Contains(t, out, "$650.00")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestAddUsers_IDsUnicos(t *testing.T) {
	s := newTestStore(t)
	jane, err := s.AddEmployee("Jane", "Doe", 123456789, price("4000"))
	require.NoError(t, err)
	john, err := s.AddCustomer("John", "Smith", "555-1234", "1 Main St")
	require.NoError(t, err)

	assert.NotEqual(t, jane, john)
	assert.Greater(t, john, jane)

	u, err := s.FindUser(jane)
	require.NoError(t, err)
	assert.True(t, u.IsEmployee())
	u, err = s.FindUser(john)
	require.NoError(t, err)
	assert.False(t, u.IsEmployee())
	assert.Equal(t, 1, s.FindUserIndex(john))
	assert.Equal(t, -1, s.FindUserIndex(999))
}

func TestEditEmployeeInformation_SoloCambiaSalario(t *testing.T) {
	s := newTestStore(t)
	jane, err := s.AddEmployee("Jane", "Doe", 123456789, price("4000"))
	require.NoError(t, err)

	require.NoError(t, s.EditEmployeeInformation(jane, "Jane", "Doe", 123456789, price("4500")))

	u, err := s.FindUser(jane)
	require.NoError(t, err)
	assert.Equal(t, jane, u.ID)
	assert.Equal(t, "Jane", u.FirstName)
	assert.Equal(t, "Doe", u.LastName)
	assert.Equal(t, 123456789, u.Employee.SSN)
	assert.True(t, price("4500").Equal(u.Employee.MonthlySalary))
	assert.Equal(t, entity.UserKindEmployee, u.Kind)
}

func TestEditUser_DespachaPorVariante(t *testing.T) {
	s := newTestStore(t)
	jane, _ := s.AddEmployee("Jane", "Doe", 123456789, price("4000"))
	john, _ := s.AddCustomer("John", "Smith", "555-1234", "1 Main St")

	assert.ErrorIs(t, s.EditEmployeeInformation(john, "John", "Smith", 123456789, price("1")), domain.ErrRoleMismatch)
	assert.ErrorIs(t, s.EditCustomerInformation(jane, "Jane", "Doe", "1", "x"), domain.ErrRoleMismatch)
	assert.ErrorIs(t, s.EditCustomerInformation(42, "A", "B", "1", "x"), domain.ErrNotFound)

	require.NoError(t, s.EditCustomerInformation(john, "Johnny", "Smith", "555-9999", "2 Elm St"))
	u, _ := s.FindUser(john)
	assert.Equal(t, "Johnny", u.FirstName)
	assert.Equal(t, "555-9999", u.Customer.Phone)
	assert.Len(t, s.Users(), 2, "editar no debe crear usuarios")
}

func TestAddEmployee_SSNFueraDeRango(t *testing.T) {
	s := newTestStore(t)
	for _, ssn := range []int{0, 99999999, 1000000000, -123456789} {
		_, err := s.AddEmployee("Jane", "Doe", ssn, price("1"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "ssn %d", ssn)
	}
	_, err := s.AddEmployee("Jane", "Doe", 100000000, price("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.Users())
}

func TestGetAllUsersFormatted(t *testing.T) {
	s := newTestStore(t)
	_, _ = s.AddEmployee("Jane", "Doe", 123456789, price("4000"))
	_, _ = s.AddCustomer("John", "Smith", "555-1234", "1 Main St")

	out := s.GetAllUsersFormatted()
	assert.Contains(t, out, "Employee")
	assert.Contains(t, out, "SSN: 123456789, Salary: 4000.00")
	assert.Contains(t, out, "Customer")
	assert.Contains(t, out, "Phone: 555-1234, Address: 1 Main St")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProgressTransaction_Escenario(t *testing.T) {
	s, employeeID, customerID := seedSale(t)

	it, err := s.FindItem("AB12C")
	require.NoError(t, err)
	require.Equal(t, 15, it.Quantity)

	tx, err := s.ProgressTransaction("AB12C", 12, customerID, employeeID, s.FindItemIndex("AB12C"))
	require.NoError(t, err)
	assert.Equal(t, 12, tx.QuantitySold)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, fixedNow, tx.CreatedAt)
	assert.True(t, price("30").Equal(tx.Total()))

	it, _ = s.FindItem("AB12C")
	assert.Equal(t, 3, it.Quantity)
	require.Len(t, s.Transactions(), 1)
	assert.Equal(t, "Carriage Bolt", s.Transactions()[0].ItemName)
}

func TestProgressTransaction_StockInsuficienteSinEfecto(t *testing.T) {
	s, employeeID, customerID := seedSale(t)

	_, err := s.ProgressTransaction("AB12C", 20, customerID, employeeID, s.FindItemIndex("AB12C"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	it, _ := s.FindItem("AB12C")
	assert.Equal(t, 15, it.Quantity)
	assert.Empty(t, s.Transactions())
}

func TestProgressTransaction_FallasSinEfectoParcial(t *testing.T) {
	s, employeeID, customerID := seedSale(t)
	idx := s.FindItemIndex("AB12C")

	cases := []struct {
		name string
		err  error
		run  func() error
	}{
		{"índice desactualizado", domain.ErrStaleIndex, func() error {
			_, err := s.ProgressTransaction("AB12C", 1, customerID, employeeID, idx+1)
			return err
		}},
		{"ID no coincide con índice", domain.ErrStaleIndex, func() error {
			_, err := s.ProgressTransaction("ZZZZZ", 1, customerID, employeeID, idx)
			return err
		}},
		{"cantidad cero", domain.ErrInvalidInput, func() error {
			_, err := s.ProgressTransaction("AB12C", 0, customerID, employeeID, idx)
			return err
		}},
		{"empleado inexistente", domain.ErrNotFound, func() error {
			_, err := s.ProgressTransaction("AB12C", 1, customerID, 999, idx)
			return err
		}},
		{"cliente como empleado", domain.ErrRoleMismatch, func() error {
			_, err := s.ProgressTransaction("AB12C", 1, customerID, customerID, idx)
			return err
		}},
		{"empleado como cliente", domain.ErrRoleMismatch, func() error {
			_, err := s.ProgressTransaction("AB12C", 1, employeeID, employeeID, idx)
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), tc.err)
			it, _ := s.FindItem("AB12C")
			assert.Equal(t, 15, it.Quantity)
			assert.Empty(t, s.Transactions())
		})
	}
}

func TestProgressTransaction_VentaExactaDejaCero(t *testing.T) {
	s, employeeID, customerID := seedSale(t)
	_, err := s.ProgressTransaction("AB12C", 15, customerID, employeeID, s.FindItemIndex("AB12C"))
	require.NoError(t, err)

	it, _ := s.FindItem("AB12C")
	assert.Equal(t, 0, it.Quantity)

	_, err = s.ProgressTransaction("AB12C", 1, customerID, employeeID, s.FindItemIndex("AB12C"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Con llamadores concurrentes el stock nunca queda negativo y las ventas exitosas suman el stock inicial.
func TestProgressTransaction_Concurrente(t *testing.T) {
	s, employeeID, customerID := seedSale(t)
	idx := s.FindItemIndex("AB12C")

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.ProgressTransaction("AB12C", 1, customerID, employeeID, idx)
		}()
	}
	wg.Wait()

	it, _ := s.FindItem("AB12C")
	assert.Equal(t, 0, it.Quantity)
	assert.Len(t, s.Transactions(), 15)
}

// Las transacciones sobreviven a la eliminación del artículo como registros históricos.
func TestRemoveItem_ConservaHistorial(t *testing.T) {
	s, employeeID, customerID := seedSale(t)
	_, err := s.ProgressTransaction("AB12C", 2, customerID, employeeID, s.FindItemIndex("AB12C"))
	require.NoError(t, err)

	_, err = s.RemoveItem(s.FindItemIndex("AB12C"))
	require.NoError(t, err)

	out := s.GetAllTransactionsFormatted()
	assert.Contains(t, out, "AB12C")
	assert.Contains(t, out, "Carriage Bolt")
	assert.Contains(t, out, "$5.00")
}

func TestSalesReport_Totales(t *testing.T) {
	s, employeeID, customerID := seedSale(t)
	for _, qty := range []int{3, 4} {
		_, err := s.ProgressTransaction("AB12C", qty, customerID, employeeID, s.FindItemIndex("AB12C"))
		require.NoError(t, err)
	}

	r := s.SalesReport("Ferretería Central")
	assert.Equal(t, "Ferretería Central", r.StoreName)
	assert.Equal(t, fixedNow, r.GeneratedAt)
	assert.Len(t, r.Transactions, 2)
	assert.Equal(t, 7, r.UnitsSold)
	assert.True(t, price("17.50").Equal(r.Revenue), "7 x 2.50")

	empty := newTestStore(t).SalesReport("x")
	assert.Empty(t, empty.Transactions)
	assert.True(t, empty.Revenue.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_RestauraEstadoYContador(t *testing.T) {
	s, employeeID, customerID := seedSale(t)
	_, err := s.ProgressTransaction("AB12C", 1, customerID, employeeID, s.FindItemIndex("AB12C"))
	require.NoError(t, err)
	assert.True(t, s.Dirty())

	snap := s.Snapshot()
	restored, err := inventory.NewStore(snap, nil)
	require.NoError(t, err)
	assert.False(t, restored.Dirty())
	assert.Equal(t, s.GetAllItemsFormatted(), restored.GetAllItemsFormatted())
	assert.Equal(t, s.GetAllUsersFormatted(), restored.GetAllUsersFormatted())
	assert.Equal(t, s.GetAllTransactionsFormatted(), restored.GetAllTransactionsFormatted())

	next, err := restored.AddCustomer("Ann", "Lee", "", "")
	require.NoError(t, err)
	assert.Greater(t, next, customerID, "los IDs no se reutilizan")
}

func TestSnapshot_EsCopiaIndependiente(t *testing.T) {
	s, _, _ := seedSale(t)
	snap := s.Snapshot()
	snap.Items[0].Quantity = 999

	it, _ := s.FindItem("AB12C")
	assert.Equal(t, 15, it.Quantity)
}

func TestNewStore_RechazaSnapshotCorrupto(t *testing.T) {
	dup := &entity.Snapshot{Items: []*entity.Item{
		entity.NewSmallHardwareItem("AAAAA", "Nail", 1, price("1"), entity.CategoryOther),
		entity.NewSmallHardwareItem("AAAAA", "Nail", 1, price("1"), entity.CategoryOther),
	}}
	_, err := inventory.NewStore(dup, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	bad := &entity.Snapshot{Users: []*entity.User{{ID: 1, FirstName: "A", LastName: "B", Kind: entity.UserKindEmployee}}}
	_, err = inventory.NewStore(bad, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := &entity.Snapshot{Items: []*entity.Item{
		entity.NewSmallHardwareItem("AAAAA", "Nail", -1, price("1"), entity.CategoryOther),
	}}
	_, err = inventory.NewStore(neg, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	huge := &entity.Snapshot{Items: []*entity.Item{
		entity.NewSmallHardwareItem("AAAAA", "Nail", rules.MaxQuantity+1, price("1"), entity.CategoryOther),
	}}
	_, err = inventory.NewStore(huge, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewStore_ValidaUsuariosComoEnElAlta(t *testing.T) {
	employee := func(first string, ssn int, salary string) *entity.User {
		return &entity.User{ID: 1, FirstName: first, LastName: "Doe", Kind: entity.UserKindEmployee,
			Employee: &entity.EmployeeDetails{SSN: ssn, MonthlySalary: price(salary)}}
	}
	cases := map[string]*entity.User{
		"SSN corto":        employee("Jane", 12345, "4000"),
		"salario negativo": employee("Jane", 123456789, "-1"),
		"nombre vacío":     employee("  ", 123456789, "4000"),
		"cliente sin apellido": {ID: 2, FirstName: "John", LastName: "", Kind: entity.UserKindCustomer,
			Customer: &entity.CustomerDetails{}},
	}
	for name, u := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := inventory.NewStore(&entity.Snapshot{Users: []*entity.User{u}}, nil)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := inventory.NewStore(&entity.Snapshot{Users: []*entity.User{employee("Jane", 123456789, "0")}}, nil)
	assert.NoError(t, err)
}

func TestNewStore_RechazaTransaccionesRepetidasOSinID(t *testing.T) {
	tx := func(id string) *entity.Transaction {
		return &entity.Transaction{ID: id, ItemID: "AB12C", ItemName: "Bolt", UnitPrice: price("2.50"),
			QuantitySold: 1, CustomerID: 2, EmployeeID: 1, CreatedAt: fixedNow}
	}
	_, err := inventory.NewStore(&entity.Snapshot{Transactions: []*entity.Transaction{tx("tx-1"), tx("tx-1")}}, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = inventory.NewStore(&entity.Snapshot{Transactions: []*entity.Transaction{tx("")}}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s, err := inventory.NewStore(&entity.Snapshot{Transactions: []*entity.Transaction{tx("tx-1"), tx("tx-2")}}, nil)
	require.NoError(t, err)
	assert.Len(t, s.Transactions(), 2)
}

func TestNewStore_ContadorDesdeIDsExistentes(t *testing.T) {
	snap := &entity.Snapshot{
		Users: []*entity.User{
			{ID: 7, FirstName: "A", LastName: "B", Kind: entity.UserKindCustomer, Customer: &entity.CustomerDetails{}},
		},
		NextUserID: 3,
	}
	s, err := inventory.NewStore(snap, nil)
	require.NoError(t, err)

	id, err := s.AddCustomer("C", "D", "", "")
	require.NoError(t, err)
	assert.Equal(t, 8, id)
}

func ExampleStore_GetMatchingItemsByName() {
	s, _ := inventory.NewStore(nil, nil)
	_ = s.AddNewSmallHardwareItem("AB12C", "Carriage Bolt", 10, decimal.RequireFromString("2.50"), entity.CategoryFasteners)
	_, err := s.GetMatchingItemsByName("nail")
	fmt.Println(err)
	// Output: artículo: recurso no encontrado
}
