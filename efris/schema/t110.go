package schema

// creditGoodsDetailRules is the credit-note variant of a goods line:
// quantities and amounts are sign reversed and most descriptive fields
// must match the original invoice line. The remaining-value caps carry
// their wire return codes (1434 qty, 1460 total).
func creditGoodsDetailRules() []FieldRule {
	return []FieldRule{
		{Name: "item", Kind: String, Required: true, MaxLen: 200, SameAsOriginal: true},
		{Name: "itemCode", Kind: String, Required: true, MaxLen: 50, SameAsOriginal: true},
		{
			Name: "qty", Kind: Number, Required: true,
			IntDigits: 12, DecDigits: 8,
			Signs:            []SignRule{{Want: Negative}},
			MaxAbsOfOriginal: true,
			FailCode:         "1434",
		},
		{Name: "unitOfMeasure", Kind: String, Required: true, MaxLen: 3, Dict: "rateUnit"},
		{
			Name: "unitPrice", Kind: Number, Required: true,
			IntDigits: 12, DecDigits: 8,
			Signs:          []SignRule{{Want: Positive}},
			SameAsOriginal: true,
		},
		{
			Name: "total", Kind: Number, Required: true,
			IntDigits: 12, DecDigits: 4,
			Signs:            []SignRule{{Want: Negative}},
			MaxAbsOfOriginal: true,
			FailCode:         "1460",
		},
		{
			Name: "taxRate", Kind: Number, Required: true,
			IntDigits: 1, DecDigits: 4,
			DeemedSentinel: true,
			SameAsOriginal: true,
		},
		{
			Name: "tax", Kind: Number, Required: true,
			IntDigits: 12, DecDigits: 4,
			Signs: []SignRule{{Want: Negative}},
		},
		{Name: "orderNumber", Kind: Number, Required: true, SameAsOriginal: true},
		{Name: "deemedFlag", Kind: String, Required: true, MaxLen: 1, Enum: []string{"1", "2"}, SameAsOriginal: true},
		{Name: "exciseFlag", Kind: String, Required: true, MaxLen: 1, Enum: []string{"1", "2"}, SameAsOriginal: true},
		{Name: "categoryId", Kind: String, MaxLen: 18, SameAsOriginal: true},
		{Name: "categoryName", Kind: String, MaxLen: 1024, SameAsOriginal: true},
		{Name: "goodsCategoryId", Kind: String, Required: true, MaxLen: 18, SameAsOriginal: true},
		{Name: "goodsCategoryName", Kind: String, MaxLen: 200, SameAsOriginal: true},
		{Name: "exciseRate", Kind: Number, MaxLen: 21, DeemedSentinel: true, SameAsOriginal: true},
		{Name: "exciseRule", Kind: String, MaxLen: 1, Enum: []string{"1", "2"}, SameAsOriginal: true},
		{
			Name: "exciseTax", Kind: Number,
			Signs: []SignRule{{Want: Negative}},
		},
		{Name: "pack", Kind: Number, SameAsOriginal: true},
		{Name: "stick", Kind: Number, SameAsOriginal: true},
		{Name: "exciseUnit", Kind: String, MaxLen: 3, SameAsOriginal: true},
		{Name: "exciseCurrency", Kind: String, MaxLen: 10, SameAsOriginal: true},
		{Name: "exciseRateName", Kind: String, MaxLen: 100},
		{Name: "vatApplicableFlag", Kind: String, MaxLen: 1, Enum: []string{"0", "1"}},
	}
}

func creditTaxDetailRules() []FieldRule {
	return []FieldRule{
		{
			Name: "taxCategoryCode", Kind: String, MaxLen: 2,
			Enum: []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11"},
		},
		{
			Name: "netAmount", Kind: Number, Required: true,
			IntDigits: 16, DecDigits: 4,
			Signs: []SignRule{{Want: NonPositive}},
		},
		{Name: "taxRate", Kind: Number, Required: true, IntDigits: 1, DecDigits: 4, DeemedSentinel: true},
		{
			Name: "taxAmount", Kind: Number, Required: true,
			IntDigits: 16, DecDigits: 4,
			Signs: []SignRule{{Want: NonPositive}},
		},
		{
			Name: "grossAmount", Kind: Number, Required: true,
			IntDigits: 16, DecDigits: 4,
			Signs: []SignRule{{Want: NonPositive}},
		},
		{Name: "exciseUnit", Kind: String, MaxLen: 3},
		{Name: "exciseCurrency", Kind: String, MaxLen: 10},
		{
			Name: "taxRateName", Kind: String, MaxLen: 100,
			RequiredWhen: AnyOf{
				Absent{Field: "taxCategoryCode"},
				In{Field: "taxCategoryCode", Values: []string{"05", "10"}},
			},
		},
	}
}

func creditSummaryRules() []FieldRule {
	return []FieldRule{
		{Name: "netAmount", Kind: Number, Required: true, IntDigits: 16, DecDigits: 4, Signs: []SignRule{{Want: NonPositive}}},
		{Name: "taxAmount", Kind: Number, Required: true, IntDigits: 16, DecDigits: 4, Signs: []SignRule{{Want: NonPositive}}},
		{Name: "grossAmount", Kind: Number, Required: true, IntDigits: 16, DecDigits: 4, Signs: []SignRule{{Want: Negative}}},
		{Name: "itemCount", Kind: Number, Required: true, MaxLen: 10, EqualsCountOf: "goodsDetails"},
		{Name: "modeCode", Kind: String, Required: true, MaxLen: 1, Enum: []string{"0", "1"}},
		{Name: "qrCode", Kind: String, MaxLen: 500},
	}
}

// T110Request is the credit note application: an adjustment document
// referencing an original invoice with sign reversed amounts.
func T110Request() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T110",
		Direction:     Request,
		Fields: []FieldRule{
			{Name: "oriInvoiceId", Kind: String, Required: true, MaxLen: 20},
			{Name: "oriInvoiceNo", Kind: String, Required: true, MaxLen: 20},
			{
				Name: "reasonCode", Kind: String, Required: true, MaxLen: 3,
				Enum: []string{"101", "102", "103"},
			},
			{Name: "reason", Kind: String, MaxLen: 1024, RequiredWhen: Equals{Field: "reasonCode", Value: "103"}},
			{Name: "applicationTime", Kind: Date, Required: true, Layout: LayoutRequestTime},
			{Name: "invoiceApplyCategoryCode", Kind: String, Required: true, MaxLen: 3},
			{Name: "currency", Kind: String, Required: true, MaxLen: 10, Dict: "currencyType"},
			{Name: "contactName", Kind: String, MaxLen: 150},
			{Name: "contactMobileNum", Kind: String, MaxLen: 30},
			{Name: "contactEmail", Kind: String, MaxLen: 50},
			{
				Name: "source", Kind: String, Required: true, MaxLen: 3,
				Enum: []string{"101", "102", "103", "104", "105", "106", "107", "108"},
			},
			{Name: "remarks", Kind: String, MaxLen: 500},
			{Name: "sellersReferenceNo", Kind: String, MaxLen: 50},
			{Name: "goodsDetails", Kind: Array, Required: true, MinItems: 1, Element: creditGoodsDetailRules()},
			{Name: "taxDetails", Kind: Array, Required: true, MinItems: 1, Element: creditTaxDetailRules()},
			{Name: "summary", Kind: Object, Required: true, Fields: creditSummaryRules()},
			{Name: "payWay", Kind: Array, Element: payWayRules()},
			{Name: "buyerDetails", Kind: Object, Fields: buyerDetailsRules()},
		},
	}
}
