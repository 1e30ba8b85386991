package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alapierre/go-efris-client/efris/model"
)

func TestDefaultStore(t *testing.T) {

	s := Default()

	assert.True(t, s.IsValidCode("currencyType", "UGX"))
	assert.False(t, s.IsValidCode("currencyType", "XXX"))
	assert.True(t, s.IsValidCode("payWay", "102"))
	assert.True(t, s.IsValidCode("neverHeardOf", "anything"), "unknown dictionaries accept everything")
}

func TestUpdateFromDictionaryResponse(t *testing.T) {

	s := New()
	s.Update(&model.DictionaryResponse{
		CurrencyType: []model.DictionaryEntry{{Value: "UGX", Name: "Uganda Shilling"}},
		PayWay:       []model.DictionaryEntry{{Value: "101", Name: "Credit"}},
	})

	assert.True(t, s.IsValidCode("currencyType", "UGX"))
	assert.False(t, s.IsValidCode("currencyType", "USD"), "update replaces, not merges")
	assert.True(t, s.IsValidCode("payWay", "101"))
}

func TestReplace(t *testing.T) {

	s := New()
	s.Replace("rateUnit", []string{"101"})
	assert.True(t, s.IsValidCode("rateUnit", "101"))

	s.Replace("rateUnit", []string{"102"})
	assert.False(t, s.IsValidCode("rateUnit", "101"))
}
