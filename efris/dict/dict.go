// Package dict keeps the URA code tables used by field rules: currencies,
// measure units, payment ways and the other T115 dictionaries.
package dict

import (
	"sync"

	"github.com/alapierre/go-efris-client/efris/model"
)

// Store is a thread safe in-memory dictionary set. The zero value is not
// usable, create one with New or Default.
type Store struct {
	mu     sync.RWMutex
	tables map[string]map[string]struct{}
}

func New() *Store {
	return &Store{tables: map[string]map[string]struct{}{}}
}

// IsValidCode reports whether code is a member of the named dictionary.
// Unknown dictionaries accept everything, keeping validation usable before
// the first T115 synchronization.
func (s *Store) IsValidCode(dictionary, code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table, ok := s.tables[dictionary]
	if !ok {
		return true
	}
	_, ok = table[code]
	return ok
}

// Replace swaps the content of one dictionary.
func (s *Store) Replace(dictionary string, codes []string) {
	table := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		table[c] = struct{}{}
	}
	s.mu.Lock()
	s.tables[dictionary] = table
	s.mu.Unlock()
}

// Update loads the dictionaries returned by a system dictionary query.
func (s *Store) Update(resp *model.DictionaryResponse) {
	s.Replace("currencyType", codes(resp.CurrencyType))
	s.Replace("payWay", codes(resp.PayWay))
	s.Replace("rateUnit", codes(resp.RateUnit))
	s.Replace("taxCategory", codes(resp.TaxCategory))
	s.Replace("invoiceIndustryCode", codes(resp.InvoiceIndustryCode))
}

func codes(entries []model.DictionaryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Value)
	}
	return out
}

// Default returns a store seeded with the codes the documentation lists,
// enough to validate invoices offline.
func Default() *Store {
	s := New()
	s.Replace("currencyType", []string{"UGX", "USD", "EUR", "GBP", "KES", "TZS", "RWF", "CNY", "JPY", "ZAR", "AED", "INR"})
	s.Replace("payWay", []string{"101", "102", "103", "104", "105", "106", "107", "108"})
	s.Replace("rateUnit", []string{
		"101", "102", "103", "104", "105", "106", "107", "108", "109", "110",
		"111", "112", "113", "114", "115", "116", "117", "118", "119", "120",
	})
	return s
}
