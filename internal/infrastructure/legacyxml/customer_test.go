package legacyxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomers(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		raw := `<customers>
<customer>
  <email>Jane.Doe@Example.com</email>
  <firstname>Jane</firstname>
  <lastname>Doe</lastname>
  <company>Doe &amp; Co</company>
  <phone>555-0100</phone>
  <address1>1 Main St</address1>
  <address2>Suite 4</address2>
  <city>Boston</city>
  <state>MA</state>
  <zip>02101</zip>
  <country>US</country>
</customer>
</customers>`

		got := ParseCustomers(raw)
		require.Len(t, got, 1)
		c := got[0]

		assert.Equal(t, "jane.doe@example.com", c.Email)
		assert.Equal(t, "Jane", c.FirstName)
		assert.Equal(t, "Doe", c.LastName)
		assert.Equal(t, "Doe & Co", c.Billing.Company)
		assert.Equal(t, "1 Main St", c.Billing.Street1)
		assert.Equal(t, "Suite 4", c.Billing.Street2)
		assert.Equal(t, "Boston", c.Billing.City)
		assert.Equal(t, "MA", c.Billing.State)
		assert.Equal(t, "02101", c.Billing.Zip)
	})

	t.Run("drops records without email", func(t *testing.T) {
		raw := `<customers>
<customer><firstname>No</firstname><lastname>Email</lastname></customer>
<customer><email>kept@example.com</email></customer>
</customers>`
		got := ParseCustomers(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "kept@example.com", got[0].Email)
	})

	t.Run("sanitizes bare ampersands before parsing", func(t *testing.T) {
		raw := `<customers><customer><email>a@b.com</email><company>Smith & Sons</company></customer></customers>`
		got := ParseCustomers(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "Smith & Sons", got[0].Billing.Company)
	})
}
