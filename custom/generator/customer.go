package generator

import (
	"ecommerce_dataset/model"
	"fmt"
	"github.com/romana/rlog"
	"strings"
)

// GenerateCustomers creates cfg.Count customers with unique email addresses.
func (g *Generator) GenerateCustomers(seq *Sequence, cfg CustomerConfig) ([]model.Customer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0, cfg.Count)
	taken := make(map[string]bool, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		firstName := g.pick(firstNames)
		lastName := g.pick(lastNames)
		domain := g.pick(cfg.EmailDomains)
		country := cfg.Countries[g.rng.IntN(len(cfg.Countries))]

		customer := model.Customer{
			CustomerID: seq.Next(),
			FirstName:  firstName,
			LastName:   lastName,
			Email:      uniqueEmail(firstName, lastName, domain, taken),
			Country:    country.Name,
		}
		customer.Phone = g.phone(country.DialCode)
		customer.RegistrationDate = g.dateIn(cfg.Registration.Start, cfg.Registration.End)
		customer.City = g.pick(country.Cities)
		customer.PostalCode = g.postalCode(country.PostalFormat)
		customers = append(customers, customer)
	}
	rlog.Debugf("Generated %d customers, next id %d", len(customers), seq.Peek())
	return customers, nil
}

// uniqueEmail builds first.last@domain and appends 2, 3, ... to the local
// part until the address is unused. The chosen address is marked as taken.
func uniqueEmail(firstName, lastName, domain string, taken map[string]bool) string {
	local := emailPart(firstName) + "." + emailPart(lastName)
	email := local + "@" + domain
	for n := 2; taken[email]; n++ {
		email = fmt.Sprintf("%s%d@%s", local, n, domain)
	}
	taken[email] = true
	return email
}

func emailPart(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
