// Package catalog contiene el catálogo fijo de productos que el asistente
// puede recomendar. La tabla se compila en el binario y nunca se modifica.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/currency"

	"github.com/jhoicas/shoppingassistantservice/internal/domain"
	"github.com/jhoicas/shoppingassistantservice/internal/domain/entity"
)

func usd(units int64, nanos int32) entity.Money {
	return entity.Money{CurrencyCode: "USD", Units: units, Nanos: nanos}
}

var products = []entity.CatalogEntry{
	{
		ID:          "OLJCESPC7Z",
		Name:        "Sunglasses",
		Description: "Add a modern touch to your outfits with these sleek aviator sunglasses.",
		Picture:     "/static/img/products/sunglasses.jpg",
		PriceUSD:    usd(19, 990000000),
		Categories:  []string{"accessories"},
	},
	{
		ID:          "66VCHSJNUP",
		Name:        "Tank Top",
		Description: "Perfectly cropped cotton tank, with a scooped neckline.",
		Picture:     "/static/img/products/tank-top.jpg",
		PriceUSD:    usd(18, 990000000),
		Categories:  []string{"clothing", "tops"},
	},
	{
		ID:          "1YMWWN1N4O",
		Name:        "Watch",
		Description: "This gold-tone stainless steel watch will work with most of your outfits.",
		Picture:     "/static/img/products/watch.jpg",
		PriceUSD:    usd(109, 990000000),
		Categories:  []string{"accessories"},
	},
	{
		ID:          "L9ECAV7KIM",
		Name:        "Loafers",
		Description: "A neat addition to your summer wardrobe.",
		Picture:     "/static/img/products/loafers.jpg",
		PriceUSD:    usd(89, 990000000),
		Categories:  []string{"footwear"},
	},
	{
		ID:          "2ZYFJ3GM2N",
		Name:        "Hairdryer",
		Description: "This lightweight hairdryer has 3 heat and speed settings. It's perfect for travel.",
		Picture:     "/static/img/products/hairdryer.jpg",
		PriceUSD:    usd(24, 990000000),
		Categories:  []string{"hair", "beauty"},
	},
	{
		ID:          "0PUK6V6EV0",
		Name:        "Candle Holder",
		Description: "This small but intricate candle holder is an excellent gift.",
		Picture:     "/static/img/products/candle-holder.jpg",
		PriceUSD:    usd(18, 990000000),
		Categories:  []string{"decor", "home"},
	},
	{
		ID:          "LS4PSXUNUM",
		Name:        "Salt & Pepper Shakers",
		Description: "Add some flavor to your kitchen.",
		Picture:     "/static/img/products/salt-and-pepper-shakers.jpg",
		PriceUSD:    usd(18, 490000000),
		Categories:  []string{"kitchen"},
	},
	{
		ID:          "9SIQT8TOJO",
		Name:        "Bamboo Glass Jar",
		Description: "This bamboo glass jar can hold 57 oz (1.7 l) and is perfect for any kitchen.",
		Picture:     "/static/img/products/bamboo-glass-jar.jpg",
		PriceUSD:    usd(5, 490000000),
		Categories:  []string{"kitchen"},
	},
	{
		ID:          "6E92ZMYYFZ",
		Name:        "Mug",
		Description: "A simple mug with a mustard interior.",
		Picture:     "/static/img/products/mug.jpg",
		PriceUSD:    usd(8, 990000000),
		Categories:  []string{"kitchen"},
	},
}

// rendered se calcula una sola vez; la tabla no cambia tras el arranque.
var rendered = mustRender(products)

// Products devuelve una copia del catálogo en su orden original.
func Products() []entity.CatalogEntry {
	out := make([]entity.CatalogEntry, len(products))
	for i, p := range products {
		p.Categories = append([]string(nil), p.Categories...)
		out[i] = p
	}
	return out
}

// Len número de productos del catálogo.
func Len() int { return len(products) }

// Render devuelve la representación textual del catálogo completo que se
// incrusta en el prompt de recomendación (JSON compacto, sin escape HTML).
func Render() string { return rendered }

func mustRender(entries []entity.CatalogEntry) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		panic("catalog: serializar catálogo: " + err.Error())
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Validate revisa la tabla al arranque: ids únicos y no vacíos, nombre presente,
// importe bien formado y código de moneda ISO 4217 reconocido.
func Validate() error {
	return validate(products)
}

func validate(entries []entity.CatalogEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for i, p := range entries {
		if p.ID == "" || p.Name == "" {
			return fmt.Errorf("%w: entrada %d sin id o nombre", domain.ErrInvalidCatalog, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: id duplicado %s", domain.ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}
		if !p.PriceUSD.Valid() || p.PriceUSD.Amount().IsNegative() {
			return fmt.Errorf("%w: precio inválido en %s", domain.ErrInvalidCatalog, p.ID)
		}
		if _, err := currency.ParseISO(p.PriceUSD.CurrencyCode); err != nil {
			return fmt.Errorf("%w: moneda %q en %s: %v", domain.ErrInvalidCatalog, p.PriceUSD.CurrencyCode, p.ID, err)
		}
	}
	return nil
}
