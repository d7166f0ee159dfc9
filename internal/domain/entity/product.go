package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// nanosPerUnit fracciones de unidad en Money.Nanos (10^-9).
const nanosPerUnit = 1_000_000_000

// Money importe monetario con la misma forma que el tipo Money del catálogo de la tienda:
// Units es la parte entera y Nanos la fracción en milmillonésimas.
type Money struct {
	CurrencyCode string `json:"currencyCode"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

// Amount devuelve el importe como decimal exacto (Units + Nanos/1e9).
func (m Money) Amount() decimal.Decimal {
	return decimal.NewFromInt(m.Units).Add(decimal.New(int64(m.Nanos), -9))
}

// String formato "USD 19.99".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.CurrencyCode, m.Amount().StringFixed(2))
}

// Valid indica si Nanos está en rango y tiene el mismo signo que Units.
func (m Money) Valid() bool {
	if m.Nanos <= -nanosPerUnit || m.Nanos >= nanosPerUnit {
		return false
	}
	return !(m.Units > 0 && m.Nanos < 0) && !(m.Units < 0 && m.Nanos > 0)
}

// CatalogEntry producto del catálogo fijo usado como material de recomendación.
// El orden de los campos define el orden en la representación JSON que recibe el modelo.
type CatalogEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	PriceUSD    Money    `json:"priceUsd"`
	Categories  []string `json:"categories"`
}
