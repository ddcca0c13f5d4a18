package legacyxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractValue(t *testing.T) {
	t.Run("matches tag case-insensitively", func(t *testing.T) {
		assert.Equal(t, "ORD-100", ExtractValue("<OrderNumber>ORD-100</OrderNumber>", "ordernumber"))
		assert.Equal(t, "ORD-100", ExtractValue("<ordernumber>ORD-100</ordernumber>", "OrderNumber"))
	})

	t.Run("trims whitespace", func(t *testing.T) {
		assert.Equal(t, "x", ExtractValue("<sku>\n  x  \n</sku>", "sku"))
	})

	t.Run("unwraps cdata with markup characters", func(t *testing.T) {
		frag := "<description><![CDATA[<b>bold</b> & raw]]></description>"
		assert.Equal(t, "<b>bold</b> & raw", ExtractValue(frag, "description"))
	})

	t.Run("decodes entities", func(t *testing.T) {
		frag := "<name>Black &amp; Decker &#174;</name>"
		assert.Equal(t, "Black & Decker ®", ExtractValue(frag, "name"))
	})

	t.Run("missing tag yields empty", func(t *testing.T) {
		assert.Equal(t, "", ExtractValue("<sku>x</sku>", "name"))
	})

	t.Run("tolerates attributes on the open tag", func(t *testing.T) {
		assert.Equal(t, "x", ExtractValue(`<sku type="main">x</sku>`, "sku"))
	})

	t.Run("does not match prefix tags", func(t *testing.T) {
		frag := "<productid>42</productid>"
		assert.Equal(t, "", ExtractValue(frag, "product"))
	})
}

func TestExtractEither(t *testing.T) {
	t.Run("lowercase dialect", func(t *testing.T) {
		assert.Equal(t, "A1", ExtractEither("<sku>A1</sku>", "sku", "SKU"))
	})

	t.Run("pascal dialect", func(t *testing.T) {
		assert.Equal(t, "A1", ExtractEither("<SKU>A1</SKU>", "sku", "SKU"))
	})

	t.Run("lowercase wins when both present", func(t *testing.T) {
		frag := "<SKU>upper</SKU><sku>lower</sku>"
		assert.Equal(t, "lower", ExtractEither(frag, "sku", "SKU"))
	})
}

func TestExtractBlock(t *testing.T) {
	frag := "<Totals><GrandTotal>55.00</GrandTotal><Tax><TaxAmount>2.50</TaxAmount></Tax></Totals>"

	t.Run("returns raw inner content", func(t *testing.T) {
		block := ExtractBlock(frag, "Totals")
		assert.Contains(t, block, "<GrandTotal>55.00</GrandTotal>")
	})

	t.Run("nested extraction", func(t *testing.T) {
		tax := ExtractBlock(ExtractBlock(frag, "Totals"), "Tax")
		assert.Equal(t, "2.50", ExtractValue(tax, "TaxAmount"))
	})
}

func TestExtractNumbered(t *testing.T) {
	frag := `<moreinfoimage1>a.jpg</moreinfoimage1>
<moreinfoimage2>none</moreinfoimage2>
<moreinfoimage3></moreinfoimage3>
<moreinfoimage4>b.jpg</moreinfoimage4>`

	got := ExtractNumbered(frag, "moreinfoimage", 20)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got)
}

func TestSplitBlocks(t *testing.T) {
	t.Run("splits consecutive records", func(t *testing.T) {
		doc := "<customers><customer><email>a@x.com</email></customer><customer><email>b@x.com</email></customer></customers>"
		frags := SplitBlocks(doc, "customer")
		assert.Len(t, frags, 2)
		assert.Contains(t, frags[0], "a@x.com")
		assert.Contains(t, frags[1], "b@x.com")
	})

	t.Run("rejects prefix tag matches", func(t *testing.T) {
		doc := "<products><productid>9</productid><product><sku>A</sku></product></products>"
		frags := SplitBlocks(doc, "product")
		assert.Len(t, frags, 1)
		assert.Contains(t, frags[0], "<sku>A</sku>")
	})

	t.Run("exact case does not cross dialects", func(t *testing.T) {
		doc := "<order><n>1</n></order>"
		assert.Empty(t, SplitBlocks(doc, "Order"))
	})

	t.Run("ignores an unterminated trailing record", func(t *testing.T) {
		doc := "<product><sku>A</sku></product><product><sku>B</sk"
		frags := SplitBlocks(doc, "product")
		assert.Len(t, frags, 1)
	})
}

func TestSplitBlocksFold(t *testing.T) {
	doc := "<Products><Product><SKU>A</SKU></Product><product><sku>B</sku></product></Products>"
	frags := SplitBlocksFold(doc, "product")
	assert.Len(t, frags, 2)
	assert.Contains(t, frags[0], "<SKU>A</SKU>")
	assert.Contains(t, frags[1], "<sku>B</sku>")
}

func TestContainsTag(t *testing.T) {
	block := "<CreditCard><Last4>1111</Last4></CreditCard>"

	assert.True(t, ContainsTag(block, "CreditCard"))
	assert.True(t, ContainsTag(block, "creditcard"))
	assert.False(t, ContainsTag(block, "PayPalExpress"))
	assert.True(t, ContainsTag("<Check/>", "Check"))
	assert.False(t, ContainsTag("<Checkout>x</Checkout>", "Check"))
}

func TestDecodeEntities(t *testing.T) {
	assert.Equal(t, `a < b > "c" & 'd'`, DecodeEntities(`a &lt; b &gt; &quot;c&quot; &amp; &apos;d&apos;`))
	assert.Equal(t, "®™", DecodeEntities("&#174;&#x2122;"))
	assert.Equal(t, "&unknown;", DecodeEntities("&unknown;"))
}
