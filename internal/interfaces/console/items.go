package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/hardware-store/internal/domain"
	"github.com/jhoicas/hardware-store/internal/domain/entity"
)

var itemKindChoices = []string{"Small Hardware Item", "Appliance"}

func categoryChoices() []string {
	out := make([]string, len(entity.Categories))
	for i, c := range entity.Categories {
		out[i] = c.Label()
	}
	return out
}

func applianceTypeChoices() []string {
	out := make([]string, len(entity.ApplianceTypes))
	for i, t := range entity.ApplianceTypes {
		out[i] = t.Label()
	}
	return out
}

// 1
func (a *App) listItems(_ context.Context) error {
	a.store.SortItemList()
	a.out.Show(a.store.GetAllItemsFormatted())
	return nil
}

// addItem repone stock si el ID existe; si no, pide los datos del artículo nuevo.
func (a *App) addItem(ctx context.Context) error {
	id, err := Ask(ctx, a.in, a.out, Field{
		Label: "ID del artículo (5 caracteres alfanuméricos). Si no existe se agregará como nuevo.",
		Kind:  FieldString,
	}, parseItemID)
	if err != nil {
		return err
	}

	if item, err := a.store.FindItem(id); err == nil {
		a.out.Show("Artículo encontrado en la base de datos.")
		qty, err := Ask(ctx, a.in, a.out, Field{Label: "Cantidad a agregar (entero mayor que 0):", Kind: FieldInteger},
			restockParser(item.Quantity))
		if err != nil {
			return err
		}
		if err := a.store.AddQuantity(a.store.FindItemIndex(id), qty); err != nil {
			return err
		}
		a.out.Show("Cantidad actualizada.")
		return nil
	}

	name, err := Ask(ctx, a.in, a.out, Field{Label: "Nombre del artículo:", Kind: FieldString}, parseNonEmpty)
	if err != nil {
		return err
	}
	qty, err := Ask(ctx, a.in, a.out, Field{Label: "Cantidad inicial (entero mayor que 0):", Kind: FieldInteger}, parsePositiveInt)
	if err != nil {
		return err
	}
	price, err := Ask(ctx, a.in, a.out, Field{Label: "Precio (número no negativo):", Kind: FieldFloat}, parseNonNegativeDecimal)
	if err != nil {
		return err
	}
	kind, err := Ask(ctx, a.in, a.out, Field{Label: "Tipo de artículo:", Kind: FieldChoice, Choices: itemKindChoices},
		choiceParser(len(itemKindChoices)))
	if err != nil {
		return err
	}

	if kind == 0 {
		cat, err := Ask(ctx, a.in, a.out, Field{Label: "Categoría:", Kind: FieldChoice, Choices: categoryChoices()},
			choiceParser(len(entity.Categories)))
		if err != nil {
			return err
		}
		err = a.store.AddNewSmallHardwareItem(id, name, qty, price, entity.Categories[cat])
		if err != nil {
			return err
		}
	} else {
		brand, err := Ask(ctx, a.in, a.out, Field{Label: "Marca:", Kind: FieldString}, parseText)
		if err != nil {
			return err
		}
		typ, err := Ask(ctx, a.in, a.out, Field{Label: "Tipo de electrodoméstico:", Kind: FieldChoice, Choices: applianceTypeChoices()},
			choiceParser(len(entity.ApplianceTypes)))
		if err != nil {
			return err
		}
		err = a.store.AddNewAppliance(id, name, qty, price, brand, entity.ApplianceTypes[typ])
		if err != nil {
			return err
		}
	}
	a.out.Show("Artículo agregado.")
	return nil
}

// removeItem aborta ante un ID mal formado y solo elimina si el operador escribe ConfirmToken.
func (a *App) removeItem(ctx context.Context) error {
	id, err := AskOnce(ctx, a.in, a.out, Field{Label: "ID del artículo a eliminar:", Kind: FieldString}, parseItemID)
	if err != nil {
		return err
	}
	item, err := a.store.FindItem(id)
	if err != nil {
		return err
	}
	a.out.Show(entity.ItemTableHeader() + item.FormattedText() + entity.ItemTableRule())

	answer, err := a.in.Prompt(ctx, Field{
		Label: fmt.Sprintf("Escriba %s (en mayúsculas) para confirmar la eliminación.", ConfirmToken),
		Kind:  FieldConfirmation,
	})
	if err != nil {
		return err
	}
	if answer != ConfirmToken {
		a.log.Info().Str("item_id", id).Msg("eliminación abortada por el operador")
		a.out.Show(fmt.Sprintf("Se escribió %q. El artículo no se eliminará.", answer))
		return nil
	}
	if _, err := a.store.RemoveItem(a.store.FindItemIndex(id)); err != nil {
		return err
	}
	a.out.Show("Artículo eliminado del inventario.")
	return nil
}

// 4
func (a *App) searchItems(ctx context.Context) error {
	fragment, err := Ask(ctx, a.in, a.out, Field{Label: "Nombre (o parte del nombre) a buscar:", Kind: FieldString}, parseText)
	if err != nil {
		return err
	}
	out, err := a.store.GetMatchingItemsByName(fragment)
	if errors.Is(err, domain.ErrItemNotFound) {
		a.out.Show(fmt.Sprintf("No se encontraron artículos con: %s.", fragment))
		return nil
	}
	if err != nil {
		return err
	}
	a.out.Show(out)
	return nil
}
