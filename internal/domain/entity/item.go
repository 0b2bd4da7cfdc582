package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemKind discrimina la variante de un artículo.
type ItemKind string

// Variantes de Item.
const (
	ItemKindSmallHardware ItemKind = "small_hardware"
	ItemKindAppliance     ItemKind = "appliance"
)

// Category clasifica los artículos de ferretería menor.
type Category string

// Categorías válidas para SmallHardwareDetails.
const (
	CategoryDoorWindow       Category = "DoorWindow"
	CategoryCabinetFurniture Category = "CabinetFurniture"
	CategoryFasteners        Category = "Fasteners"
	CategoryStructural       Category = "Structural"
	CategoryOther            Category = "Other"
)

// Categories en el orden en que se ofrecen al usuario (1..5).
var Categories = []Category{
	CategoryDoorWindow,
	CategoryCabinetFurniture,
	CategoryFasteners,
	CategoryStructural,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryDoorWindow:       "Door&Window",
	CategoryCabinetFurniture: "Cabinet&Furniture",
	CategoryFasteners:        "Fasteners",
	CategoryStructural:       "Structural",
	CategoryOther:            "Other",
}

// Label devuelve el nombre para mostrar de la categoría.
func (c Category) Label() string { return categoryLabels[c] }

// Valid indica si la categoría es una de las conocidas.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ApplianceType clasifica los electrodomésticos.
type ApplianceType string

// Tipos válidos para ApplianceDetails.
const (
	ApplianceRefrigerators  ApplianceType = "Refrigerators"
	ApplianceWashersDryers  ApplianceType = "WashersDryers"
	ApplianceRangesOvens    ApplianceType = "RangesOvens"
	ApplianceSmallAppliance ApplianceType = "SmallAppliance"
)

// ApplianceTypes en el orden en que se ofrecen al usuario (1..4).
var ApplianceTypes = []ApplianceType{
	ApplianceRefrigerators,
	ApplianceWashersDryers,
	ApplianceRangesOvens,
	ApplianceSmallAppliance,
}

var applianceLabels = map[ApplianceType]string{
	ApplianceRefrigerators:  "Refrigerators",
	ApplianceWashersDryers:  "Washers&Dryers",
	ApplianceRangesOvens:    "Ranges&Ovens",
	ApplianceSmallAppliance: "Small Appliance",
}

// Label devuelve el nombre para mostrar del tipo de electrodoméstico.
func (t ApplianceType) Label() string { return applianceLabels[t] }

// Valid indica si el tipo es uno de los conocidos.
func (t ApplianceType) Valid() bool {
	_, ok := applianceLabels[t]
	return ok
}

// SmallHardwareDetails campos propios de la ferretería menor.
type SmallHardwareDetails struct {
	Category Category `json:"category"`
}

// ApplianceDetails campos propios de un electrodoméstico.
type ApplianceDetails struct {
	Brand string        `json:"brand"`
	Type  ApplianceType `json:"type"`
}

// Item representa un artículo del catálogo. Kind indica cuál de Hardware o Appliance está presente.
type Item struct {
	ID        string                `json:"id"` // 5 caracteres alfanuméricos, inmutable
	Name      string                `json:"name"`
	Quantity  int                   `json:"quantity"`
	Price     decimal.Decimal       `json:"price"`
	Kind      ItemKind              `json:"kind"`
	Hardware  *SmallHardwareDetails `json:"hardware,omitempty"`
	Appliance *ApplianceDetails     `json:"appliance,omitempty"`
}

// NewSmallHardwareItem construye la variante de ferretería menor.
func NewSmallHardwareItem(id, name string, quantity int, price decimal.Decimal, category Category) *Item {
	return &Item{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Kind:     ItemKindSmallHardware,
		Hardware: &SmallHardwareDetails{Category: category},
	}
}

// NewAppliance construye la variante de electrodoméstico.
func NewAppliance(id, name string, quantity int, price decimal.Decimal, brand string, t ApplianceType) *Item {
	return &Item{
		ID:        id,
		Name:      name,
		Quantity:  quantity,
		Price:     price,
		Kind:      ItemKindAppliance,
		Appliance: &ApplianceDetails{Brand: brand, Type: t},
	}
}

// Clone devuelve una copia profunda.
func (i *Item) Clone() *Item {
	c := *i
	if i.Hardware != nil {
		h := *i.Hardware
		c.Hardware = &h
	}
	if i.Appliance != nil {
		a := *i.Appliance
		c.Appliance = &a
	}
	return &c
}

// Consistent verifica que el discriminador y los datos de la variante coincidan.
func (i *Item) Consistent() bool {
	switch i.Kind {
	case ItemKindSmallHardware:
		return i.Hardware != nil && i.Appliance == nil && i.Hardware.Category.Valid()
	case ItemKindAppliance:
		return i.Appliance != nil && i.Hardware == nil && i.Appliance.Type.Valid()
	default:
		return false
	}
}

const itemRowFormat = "| %-20s| %-8s| %-21s| %-9s| %-11s| %-27s|\n"

// ItemTableHeader encabezado de la tabla de artículos (incluye separadores).
func ItemTableHeader() string {
	return ItemTableRule() +
		fmt.Sprintf(itemRowFormat, "Item Type", "Item ID", "Name", "Quantity", "Price", "Details") +
		ItemTableRule()
}

// ItemTableRule separador horizontal de la tabla de artículos.
func ItemTableRule() string {
	return " " + strings.Repeat("-", 108) + "\n"
}

// FormattedText devuelve la fila de tabla del artículo según su variante.
func (i *Item) FormattedText() string {
	var kind, details string
	switch i.Kind {
	case ItemKindSmallHardware:
		kind = "Small Hardware Item"
		if i.Hardware != nil {
			details = "Category: " + i.Hardware.Category.Label()
		}
	case ItemKindAppliance:
		kind = "Appliance"
		if i.Appliance != nil {
			details = fmt.Sprintf("%s, %s", i.Appliance.Brand, i.Appliance.Type.Label())
		}
	default:
		kind = string(i.Kind)
	}
	return fmt.Sprintf(itemRowFormat,
		kind, i.ID, i.Name, strconv.Itoa(i.Quantity), "$"+i.Price.StringFixed(2), details)
}
