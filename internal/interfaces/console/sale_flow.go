package console

import (
	"context"
	"fmt"

	"github.com/jhoicas/hardware-store/internal/application/inventory"
	"github.com/jhoicas/hardware-store/internal/domain/entity"
	"github.com/jhoicas/hardware-store/pkg/logger"
)

// saleState estado del flujo de venta. Committed y Aborted son terminales.
type saleState int

const (
	stateCollectingItem saleState = iota
	stateCollectingSaleQuantity
	stateCollectingEmployee
	stateCollectingCustomer
	stateCommitted
	stateAborted
)

func (s saleState) String() string {
	switch s {
	case stateCollectingItem:
		return "CollectingItem"
	case stateCollectingSaleQuantity:
		return "CollectingSaleQuantity"
	case stateCollectingEmployee:
		return "CollectingEmployee"
	case stateCollectingCustomer:
		return "CollectingCustomer"
	case stateCommitted:
		return "Committed"
	case stateAborted:
		return "Aborted"
	}
	return fmt.Sprintf("saleState(%d)", int(s))
}

// saleFlow recoge artículo, cantidad, empleado y cliente; el Store solo se modifica al llegar a Committed.
type saleFlow struct {
	store *inventory.Store
	in    Input
	out   Output
	log   *logger.Logger

	state      saleState
	itemID     string
	itemIndex  int
	stock      int
	quantity   int
	employeeID int
	customerID int

	tx  *entity.Transaction
	err error
}

func newSaleFlow(store *inventory.Store, in Input, out Output, log *logger.Logger) *saleFlow {
	return &saleFlow{store: store, in: in, out: out, log: log, state: stateCollectingItem}
}

func (f *saleFlow) done() bool {
	return f.state == stateCommitted || f.state == stateAborted
}

// run avanza hasta un estado terminal. Devuelve la transacción registrada o el motivo del aborto.
func (f *saleFlow) run(ctx context.Context) (*entity.Transaction, error) {
	for !f.done() {
		var err error
		switch f.state {
		case stateCollectingItem:
			err = f.collectItem(ctx)
		case stateCollectingSaleQuantity:
			err = f.collectQuantity(ctx)
		case stateCollectingEmployee:
			err = f.collectEmployee(ctx)
		case stateCollectingCustomer:
			err = f.collectCustomer(ctx)
			if err == nil {
				err = f.commit()
			}
		}
		if err != nil {
			f.abort(err)
		}
	}
	return f.tx, f.err
}

func (f *saleFlow) advance(next saleState) {
	f.log.Debug().Stringer("from", f.state).Stringer("to", next).Msg("venta: cambio de estado")
	f.state = next
}

func (f *saleFlow) abort(err error) {
	f.log.Warn().Err(err).Stringer("state", f.state).Msg("venta abortada")
	f.err = err
	f.state = stateAborted
}

// Un ID mal formado se vuelve a pedir; un ID inexistente aborta.
func (f *saleFlow) collectItem(ctx context.Context) error {
	id, err := Ask(ctx, f.in, f.out, Field{Label: "ID del artículo vendido:", Kind: FieldString}, parseItemID)
	if err != nil {
		return err
	}
	item, err := f.store.FindItem(id)
	if err != nil {
		return err
	}
	f.itemID, f.itemIndex, f.stock = id, f.store.FindItemIndex(id), item.Quantity
	f.out.Show(fmt.Sprintf("%s: %d en stock.", item.Name, item.Quantity))
	f.advance(stateCollectingSaleQuantity)
	return nil
}

func (f *saleFlow) collectQuantity(ctx context.Context) error {
	qty, err := Ask(ctx, f.in, f.out, Field{Label: "Cantidad vendida:", Kind: FieldInteger}, func(raw string) (int, error) {
		n, err := parsePositiveInt(raw)
		if err != nil {
			return 0, err
		}
		if n > f.stock {
			return 0, invalid("Cantidad demasiado grande: solo hay %d en stock.", f.stock)
		}
		return n, nil
	})
	if err != nil {
		return err
	}
	f.quantity = qty
	f.advance(stateCollectingEmployee)
	return nil
}

func (f *saleFlow) collectEmployee(ctx context.Context) error {
	id, err := Ask(ctx, f.in, f.out, Field{Label: "ID del empleado:", Kind: FieldInteger}, f.userParser(true))
	if err != nil {
		return err
	}
	f.employeeID = id
	f.advance(stateCollectingCustomer)
	return nil
}

func (f *saleFlow) collectCustomer(ctx context.Context) error {
	id, err := Ask(ctx, f.in, f.out, Field{Label: "ID del cliente:", Kind: FieldInteger}, f.userParser(false))
	if err != nil {
		return err
	}
	f.customerID = id
	return nil
}

// userParser acepta solo IDs existentes con el rol pedido.
func (f *saleFlow) userParser(employee bool) Parser[int] {
	return func(raw string) (int, error) {
		id, err := parseUserID(raw)
		if err != nil {
			return 0, err
		}
		u, err := f.store.FindUser(id)
		if err != nil {
			return 0, invalid("Usuario %d no encontrado.", id)
		}
		if employee && !u.IsEmployee() {
			return 0, invalid("El usuario %d no es empleado.", id)
		}
		if !employee && u.IsEmployee() {
			return 0, invalid("El usuario %d no es cliente.", id)
		}
		return id, nil
	}
}

func (f *saleFlow) commit() error {
	tx, err := f.store.ProgressTransaction(f.itemID, f.quantity, f.customerID, f.employeeID, f.itemIndex)
	if err != nil {
		return err
	}
	f.tx = tx
	f.advance(stateCommitted)
	return nil
}

// 8
func (a *App) completeSale(ctx context.Context) error {
	tx, err := newSaleFlow(a.store, a.in, a.out, a.log).run(ctx)
	if err != nil {
		return err
	}
	a.out.Show("Transacción completada.\n" + entity.TransactionTableHeader() + tx.FormattedText() + entity.TransactionTableRule())
	return nil
}

// 9
func (a *App) listTransactions(_ context.Context) error {
	a.out.Show(a.store.GetAllTransactionsFormatted())
	return nil
}
