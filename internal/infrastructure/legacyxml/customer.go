package legacyxml

import (
	"strings"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
)

// CustomerRecordTag bounds one customer record. The legacy platform is
// consistent about customers: always lowercase.
const CustomerRecordTag = "customer"

// CustomerRootTag is the customer feed's root element
const CustomerRootTag = "customers"

// ParseCustomers sanitizes a raw customer feed and extracts every record
// that carries an email. Records without one cannot be keyed and are
// dropped silently.
func ParseCustomers(raw string) []legacy.Customer {
	doc := Sanitize(raw)
	frags := SplitBlocks(doc, CustomerRecordTag)
	out := make([]legacy.Customer, 0, len(frags))
	for _, frag := range frags {
		if c, ok := ParseCustomer(frag); ok {
			out = append(out, c)
		}
	}
	return out
}

// ParseCustomer extracts a single customer record from its fragment
func ParseCustomer(frag string) (legacy.Customer, bool) {
	email := strings.ToLower(strings.TrimSpace(ExtractValue(frag, "email")))
	if email == "" {
		return legacy.Customer{}, false
	}
	return legacy.Customer{
		Email:     email,
		FirstName: ExtractValue(frag, "firstname"),
		LastName:  ExtractValue(frag, "lastname"),
		Billing: legacy.Address{
			Company: ExtractValue(frag, "company"),
			Phone:   ExtractValue(frag, "phone"),
			Street1: ExtractValue(frag, "address1"),
			Street2: ExtractValue(frag, "address2"),
			City:    ExtractValue(frag, "city"),
			State:   ExtractValue(frag, "state"),
			Zip:     ExtractValue(frag, "zip"),
			Country: ExtractValue(frag, "country"),
		},
		RawFragment: frag,
	}, true
}
