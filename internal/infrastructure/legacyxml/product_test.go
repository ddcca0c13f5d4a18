package legacyxml

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProducts(t *testing.T) {
	t.Run("full record lowercase dialect", func(t *testing.T) {
		raw := `<products>
<product>
  <sku>WID-001</sku>
  <name>Widget & Sprocket</name>
  <price>$1,299.99</price>
  <saleamount>999.00</saleamount>
  <description><![CDATA[A <b>premium</b> widget]]></description>
  <quantityonhand>12</quantityonhand>
  <lowstockthreshold>3</lowstockthreshold>
  <image>main.jpg</image>
  <moreinfoimage1>alt1.jpg</moreinfoimage1>
  <moreinfoimage2>none</moreinfoimage2>
  <weight>2.5</weight>
  <taxable>checked</taxable>
  <brand>Acme</brand>
  <category>Hardware</category>
  <tags>new, featured; sale</tags>
</product>
</products>`

		got := ParseProducts(raw)
		require.Len(t, got, 1)
		p := got[0]

		assert.Equal(t, "WID-001", p.SKU)
		assert.Equal(t, "Widget & Sprocket", p.Name)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("1299.99")))
		require.NotNil(t, p.SaleAmount)
		assert.True(t, p.SaleAmount.Equal(decimal.RequireFromString("999.00")))
		assert.Equal(t, "A <b>premium</b> widget", p.Description)
		assert.Equal(t, 12, p.QuantityOnHand)
		require.NotNil(t, p.LowStockThreshold)
		assert.Equal(t, 3, *p.LowStockThreshold)
		assert.Equal(t, "main.jpg", p.ImageURL)
		assert.Equal(t, []string{"alt1.jpg"}, p.MoreImageURLs)
		assert.True(t, p.Taxable)
		assert.Equal(t, "Acme", p.Brand)
		assert.Equal(t, []string{"new", "featured", "sale"}, p.Tags)
	})

	t.Run("pascal dialect", func(t *testing.T) {
		raw := `<Products><Product><SKU>P-1</SKU><Name>Thing</Name><Price>5.00</Price></Product></Products>`
		got := ParseProducts(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "P-1", got[0].SKU)
		assert.Equal(t, "Thing", got[0].Name)
	})

	t.Run("mixed dialects in one feed", func(t *testing.T) {
		raw := `<products>
<product><sku>a</sku><name>A</name></product>
<Product><SKU>b</SKU><Name>B</Name></Product>
</products>`
		got := ParseProducts(raw)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].SKU)
		assert.Equal(t, "b", got[1].SKU)
	})

	t.Run("drops records missing sku or name", func(t *testing.T) {
		raw := `<products>
<product><sku>ok</sku><name>OK</name></product>
<product><name>no sku</name></product>
<product><sku>no-name</sku></product>
</products>`
		got := ParseProducts(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "ok", got[0].SKU)
	})

	t.Run("drops disabled records", func(t *testing.T) {
		raw := `<products>
<product><sku>a</sku><name>A</name><disabled>checked</disabled></product>
<product><sku>b</sku><name>B</name><disabled>no</disabled></product>
</products>`
		got := ParseProducts(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].SKU)
	})

	t.Run("optional fields default to nil and zero", func(t *testing.T) {
		raw := `<products><product><sku>min</sku><name>Min</name></product></products>`
		got := ParseProducts(raw)
		require.Len(t, got, 1)
		p := got[0]
		assert.Nil(t, p.SaleAmount)
		assert.Nil(t, p.LowStockThreshold)
		assert.True(t, p.Price.IsZero())
		assert.Empty(t, p.MoreImageURLs)
	})

	t.Run("keeps raw fragment", func(t *testing.T) {
		raw := `<products><product><sku>r</sku><name>R</name></product></products>`
		got := ParseProducts(raw)
		require.Len(t, got, 1)
		assert.Contains(t, got[0].RawFragment, "<sku>r</sku>")
	})
}
