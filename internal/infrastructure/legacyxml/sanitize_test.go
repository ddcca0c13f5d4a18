package legacyxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Run("escapes bare ampersands", func(t *testing.T) {
		got := Sanitize("<name>Nuts & Bolts</name>")
		assert.Equal(t, "<name>Nuts &amp; Bolts</name>", got)
	})

	t.Run("preserves existing entities", func(t *testing.T) {
		in := "<name>Black &amp; Decker &#174; &#x2122;</name>"
		assert.Equal(t, in, Sanitize(in))
	})

	t.Run("converts html entities to numeric references", func(t *testing.T) {
		got := Sanitize("<description>10&nbsp;mm&nbsp;&ndash;&nbsp;steel&trade;</description>")
		assert.Equal(t, "<description>10&#160;mm&#160;&#8211;&#160;steel&#8482;</description>", got)
	})

	t.Run("mixed bare and valid ampersands", func(t *testing.T) {
		got := Sanitize("A & B &amp; C & D")
		assert.Equal(t, "A &amp; B &amp; C &amp; D", got)
	})

	t.Run("ampersand at end of input", func(t *testing.T) {
		assert.Equal(t, "trailing &amp;", Sanitize("trailing &"))
	})

	t.Run("unterminated reference is escaped", func(t *testing.T) {
		assert.Equal(t, "&amp;nbsp without semicolon", Sanitize("&nbsp without semicolon"))
	})

	t.Run("idempotent", func(t *testing.T) {
		in := "<p>Tom & Jerry &copy; 1940 &#38; beyond</p>"
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	})

	t.Run("no ampersands passes through", func(t *testing.T) {
		in := "<product><sku>ABC</sku></product>"
		assert.Equal(t, in, Sanitize(in))
	})
}
