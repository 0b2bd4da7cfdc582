package inventory

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hardware-store/internal/domain"
	"github.com/jhoicas/hardware-store/internal/domain/entity"
	rules "github.com/jhoicas/hardware-store/internal/domain/inventory"
	"github.com/jhoicas/hardware-store/pkg/logger"
)

// Store mantiene en memoria las tres colecciones de la tienda (artículos, usuarios y transacciones)
// y garantiza sus invariantes: IDs únicos, cantidades y precios no negativos, ventas con stock suficiente.
// Todas las operaciones toman el mismo mutex; cada operación que modifica se aplica completa o no se aplica.
type Store struct {
	mu           sync.Mutex
	items        []*entity.Item
	users        []*entity.User
	transactions []*entity.Transaction
	nextUserID   int
	dirty        bool

	now   Clock
	newID IDGenerator
	log   *logger.Logger
}

// NewStore construye el Store a partir de un snapshot cargado (nil = base vacía).
// Rechaza snapshots que violen los invariantes: IDs repetidos, variantes incoherentes, cantidades fuera de rango
// o usuarios que no pasarían la validación del alta.
func NewStore(snap *entity.Snapshot, log *logger.Logger, opts ...Option) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	data := snap.Clone()
	if err := validateSnapshot(data); err != nil {
		return nil, err
	}
	s := &Store{
		items:        data.Items,
		users:        data.Users,
		transactions: data.Transactions,
		nextUserID:   nextUserID(data),
		now:          time.Now,
		newID:        defaultIDGenerator,
		log:          log.Component("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func validateSnapshot(snap *entity.Snapshot) error {
	itemIDs := make(map[string]struct{}, len(snap.Items))
	for _, it := range snap.Items {
		if it == nil || !rules.ValidItemID(it.ID) || !it.Consistent() ||
			it.Quantity < 0 || it.Quantity > rules.MaxQuantity || !rules.ValidAmount(it.Price) {
			return fmt.Errorf("snapshot: artículo corrupto: %w", domain.ErrInvalidInput)
		}
		if _, dup := itemIDs[it.ID]; dup {
			return fmt.Errorf("snapshot: artículo %s repetido: %w", it.ID, domain.ErrDuplicate)
		}
		itemIDs[it.ID] = struct{}{}
	}
	userIDs := make(map[int]struct{}, len(snap.Users))
	for _, u := range snap.Users {
		if u == nil || u.ID <= 0 || !u.Consistent() {
			return fmt.Errorf("snapshot: usuario corrupto: %w", domain.ErrInvalidInput)
		}
		if err := validateLoadedUser(u); err != nil {
			return fmt.Errorf("snapshot: usuario %d: %w", u.ID, err)
		}
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("snapshot: usuario %d repetido: %w", u.ID, domain.ErrDuplicate)
		}
		userIDs[u.ID] = struct{}{}
	}
	txIDs := make(map[string]struct{}, len(snap.Transactions))
	for _, t := range snap.Transactions {
		if t == nil || t.ID == "" || !rules.ValidQuantity(t.QuantitySold) || !rules.ValidAmount(t.UnitPrice) {
			return fmt.Errorf("snapshot: transacción corrupta: %w", domain.ErrInvalidInput)
		}
		if _, dup := txIDs[t.ID]; dup {
			return fmt.Errorf("snapshot: transacción %s repetida: %w", t.ID, domain.ErrDuplicate)
		}
		txIDs[t.ID] = struct{}{}
	}
	return nil
}

// validateLoadedUser aplica a los datos cargados las mismas reglas que al alta.
func validateLoadedUser(u *entity.User) error {
	if u.IsEmployee() {
		return validateEmployee(u.FirstName, u.LastName, u.Employee.SSN, u.Employee.MonthlySalary)
	}
	return validateNames(u.FirstName, u.LastName)
}

// nextUserID nunca reutiliza un ID: el mayor entre el contador guardado y max(ID)+1.
func nextUserID(snap *entity.Snapshot) int {
	next := max(snap.NextUserID, 1)
	for _, u := range snap.Users {
		next = max(next, u.ID+1)
	}
	return next
}

// Snapshot devuelve una copia profunda del estado actual para persistirlo.
func (s *Store) Snapshot() *entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := &entity.Snapshot{
		Items:        s.items,
		Users:        s.users,
		Transactions: s.transactions,
		NextUserID:   s.nextUserID,
	}
	return snap.Clone()
}

// Dirty indica si hay cambios sin guardar.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkSaved limpia la marca de cambios pendientes tras un guardado exitoso.
func (s *Store) MarkSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

// ── Artículos ─────────────────────────────────────────────────────────────────

// FindItemIndex devuelve la posición del artículo con ese ID, o -1.
func (s *Store) FindItemIndex(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemIndex(id)
}

func (s *Store) itemIndex(id string) int {
	return slices.IndexFunc(s.items, func(it *entity.Item) bool { return it.ID == id })
}

// FindItem devuelve una copia del artículo con ese ID.
func (s *Store) FindItem(id string) (*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.itemIndex(id)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}
	return s.items[idx].Clone(), nil
}

// ItemCount devuelve el número de artículos.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items devuelve copias de los artículos en el orden actual.
func (s *Store) Items() []*entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Clone())
	}
	return out
}

// AddQuantity suma amount (> 0) al stock del artículo en index. El resultado no puede superar rules.MaxQuantity.
func (s *Store) AddQuantity(index, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return domain.ErrStaleIndex
	}
	if !rules.ValidQuantity(amount) {
		return fmt.Errorf("cantidad a agregar %d: %w", amount, domain.ErrInvalidInput)
	}
	it := s.items[index]
	if !rules.CanRestock(it.Quantity, amount) {
		return fmt.Errorf("cantidad a agregar %d: el stock de %s superaría %d: %w",
			amount, it.ID, rules.MaxQuantity, domain.ErrInvalidInput)
	}
	it.Quantity += amount
	s.dirty = true
	s.log.Info().Str("item_id", it.ID).Int("added", amount).Int("quantity", it.Quantity).Msg("stock repuesto")
	return nil
}

// AddNewSmallHardwareItem agrega un artículo de ferretería menor.
func (s *Store) AddNewSmallHardwareItem(id, name string, quantity int, price decimal.Decimal, category entity.Category) error {
	if !category.Valid() {
		return fmt.Errorf("categoría %q: %w", category, domain.ErrInvalidInput)
	}
	return s.addItem(entity.NewSmallHardwareItem(id, name, quantity, price, category))
}

// AddNewAppliance agrega un electrodoméstico.
func (s *Store) AddNewAppliance(id, name string, quantity int, price decimal.Decimal, brand string, applianceType entity.ApplianceType) error {
	if !applianceType.Valid() {
		return fmt.Errorf("tipo de electrodoméstico %q: %w", applianceType, domain.ErrInvalidInput)
	}
	return s.addItem(entity.NewAppliance(id, name, quantity, price, brand, applianceType))
}

func (s *Store) addItem(it *entity.Item) error {
	switch {
	case !rules.ValidItemID(it.ID):
		return fmt.Errorf("ID %q: %w", it.ID, domain.ErrInvalidInput)
	case strings.TrimSpace(it.Name) == "":
		return fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	case !rules.ValidQuantity(it.Quantity):
		return fmt.Errorf("cantidad %d: %w", it.Quantity, domain.ErrInvalidInput)
	case !rules.ValidAmount(it.Price):
		return fmt.Errorf("precio %s: %w", it.Price, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itemIndex(it.ID) >= 0 {
		return fmt.Errorf("artículo %s: %w", it.ID, domain.ErrDuplicate)
	}
	s.items = append(s.items, it)
	s.dirty = true
	s.log.Info().Str("item_id", it.ID).Str("kind", string(it.Kind)).Int("quantity", it.Quantity).Msg("artículo agregado")
	return nil
}

// RemoveItem elimina definitivamente el artículo en index y lo devuelve.
func (s *Store) RemoveItem(index int) (*entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.items) {
		return nil, domain.ErrStaleIndex
	}
	removed := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	s.dirty = true
	s.log.Info().Str("item_id", removed.ID).Msg("artículo eliminado")
	return removed, nil
}

// SortItemList ordena los artículos por ID ascendente (orden de bytes, estable). Es idempotente.
func (s *Store) SortItemList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	slices.SortStableFunc(s.items, func(a, b *entity.Item) int { return strings.Compare(a.ID, b.ID) })
}

// GetMatchingItemsByName devuelve la tabla de artículos cuyo nombre contiene fragment
// (sin distinguir mayúsculas), o ErrItemNotFound si no hay coincidencias.
func (s *Store) GetMatchingItemsByName(fragment string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := rules.NewNameMatcher(fragment)
	var matches []*entity.Item
	for _, it := range s.items {
		if m.Match(it.Name) {
			matches = append(matches, it)
		}
	}
	if len(matches) == 0 {
		return "", domain.ErrItemNotFound
	}
	return formatItems(matches), nil
}

// GetAllItemsFormatted devuelve la tabla de artículos en el orden actual (llamar SortItemList antes).
func (s *Store) GetAllItemsFormatted() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return formatItems(s.items)
}
