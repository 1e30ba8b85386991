package schema

// The small interfaces of the invoice-upload family. Each table follows
// its own row in the catalog; request and response stay separate even
// where they look symmetric.

// T101Response carries the server time in the response-side date format,
// dd/MM/yyyy HH:mm:ss, which deviates from every other timestamp.
func T101Response() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T101",
		Direction:     Response,
		Fields: []FieldRule{
			{Name: "currentTime", Kind: Date, Required: true, MaxLen: 20, Layout: LayoutResponseTime},
		},
	}
}

// T104Response is the symmetric key exchange. The passowrdDes spelling is
// the wire's own.
func T104Response() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T104",
		Direction:     Response,
		Fields: []FieldRule{
			{Name: "passowrdDes", Kind: String, Required: true},
			{Name: "sign", Kind: String, Required: true},
		},
	}
}

// T115Response delivers the dictionary code tables.
func T115Response() *Descriptor {
	entry := []FieldRule{
		{Name: "value", Kind: String, Required: true, MaxLen: 10},
		{Name: "name", Kind: String, Required: true, MaxLen: 100},
	}
	return &Descriptor{
		InterfaceCode: "T115",
		Direction:     Response,
		Fields: []FieldRule{
			{Name: "rateUnit", Kind: Array, Element: entry},
			{Name: "currencyType", Kind: Array, Element: entry},
			{Name: "payWay", Kind: Array, Element: entry},
			{Name: "invoiceIndustryCode", Kind: Array, Element: entry},
			{Name: "taxCategory", Kind: Array, Element: entry},
			{Name: "dictionaryVersion", Kind: String},
		},
	}
}

func T119Request() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T119",
		Direction:     Request,
		Fields: []FieldRule{
			{Name: "tin", Kind: String, MinLen: 10, MaxLen: 20, RequiredWhen: Absent{Field: "ninBrn"}},
			{Name: "ninBrn", Kind: String, MaxLen: 100, RequiredWhen: Absent{Field: "tin"}},
		},
	}
}

func T119Response() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T119",
		Direction:     Response,
		Fields: []FieldRule{
			{
				Name: "taxpayer", Kind: Object, Required: true,
				Fields: []FieldRule{
					{Name: "tin", Kind: String, Required: true, MinLen: 10, MaxLen: 20},
					{Name: "ninBrn", Kind: String, MaxLen: 100},
					{Name: "legalName", Kind: String, Required: true, MaxLen: 256},
					{Name: "businessName", Kind: String, MaxLen: 256},
					{Name: "address", Kind: String, MaxLen: 500},
					{Name: "contactNumber", Kind: String, MaxLen: 30},
					{Name: "contactEmail", Kind: String, MaxLen: 50},
					{Name: "taxpayerType", Kind: String, MaxLen: 3},
					{Name: "governmentTIN", Kind: String, MaxLen: 20},
				},
			},
		},
	}
}

// T129Request is the batch invoice upload: a top level array where each
// slot wraps a full T109 request document as plaintext.
func T129Request() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T129",
		Direction:     Request,
		TopLevelArray: true,
		Fields: []FieldRule{
			{Name: "invoiceContent", Kind: String, Required: true},
			{Name: "invoiceSignature", Kind: String, Required: true},
		},
	}
}

// T129Response reports per item success; item failure populates the same
// position slot, never its siblings.
func T129Response() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T129",
		Direction:     Response,
		TopLevelArray: true,
		Fields: []FieldRule{
			{Name: "invoiceContent", Kind: String, Required: true},
			{Name: "invoiceReturnCode", Kind: String},
			{Name: "invoiceReturnMessage", Kind: String},
		},
	}
}

func goodsRules() []FieldRule {
	service := Equals{Field: "goodsTypeCode", Value: "102"}
	return []FieldRule{
		{Name: "operationType", Kind: String, MaxLen: 3, Enum: []string{"101", "102"}},
		{Name: "goodsName", Kind: String, Required: true, MaxLen: 200},
		{Name: "goodsCode", Kind: String, Required: true, MaxLen: 50},
		{Name: "measureUnit", Kind: String, Required: true, MaxLen: 3, Dict: "rateUnit"},
		{
			Name: "unitPrice", Kind: Number,
			RequiredWhen: Not{C: service},
			IntDigits:    12, DecDigits: 8,
		},
		{Name: "currency", Kind: String, Required: true, MaxLen: 3, Dict: "currencyType"},
		{Name: "commodityCategoryId", Kind: String, Required: true, MaxLen: 18},
		{Name: "haveExciseTax", Kind: String, Required: true, MaxLen: 3, Enum: []string{"101", "102"}},
		{Name: "description", Kind: String, MaxLen: 1024},
		{
			Name: "stockPrewarning", Kind: Number, MaxLen: 24,
			RequiredWhen: Not{C: service},
			IntDigits:    12, DecDigits: 8,
			Signs: []SignRule{{Want: NonNegative}},
		},
		{
			Name: "pieceMeasureUnit", Kind: String, MaxLen: 3, Dict: "rateUnit",
			RequiredWhen: Equals{Field: "havePieceUnit", Value: "101"},
			EmptyWhen:    Equals{Field: "havePieceUnit", Value: "102"},
		},
		{Name: "havePieceUnit", Kind: String, Required: true, MaxLen: 3, Enum: []string{"101", "102"}},
		{Name: "pieceUnitPrice", Kind: Number, RequiredWhen: Equals{Field: "havePieceUnit", Value: "101"}},
		{Name: "packageScaledValue", Kind: Number, RequiredWhen: Equals{Field: "havePieceUnit", Value: "101"}},
		{Name: "pieceScaledValue", Kind: Number, RequiredWhen: Equals{Field: "havePieceUnit", Value: "101"}},
		{Name: "exciseDutyCode", Kind: String, MaxLen: 50, RequiredWhen: Equals{Field: "haveExciseTax", Value: "101"}},
		{Name: "haveOtherUnit", Kind: String, MaxLen: 3},
		{Name: "goodsTypeCode", Kind: String, MaxLen: 3, Enum: []string{"101", "102"}},
		{
			Name: "commodityGoodsExtendEntity", Kind: Object,
			Fields: []FieldRule{
				{Name: "customsMeasureUnit", Kind: String, MaxLen: 10},
				{Name: "customsUnitPrice", Kind: Number, IntDigits: 12, DecDigits: 8},
				{Name: "packageScaledValueCustoms", Kind: Number},
				{Name: "customsScaledValue", Kind: Number},
			},
		},
		{
			Name: "goodsOtherUnits", Kind: Array,
			Element: []FieldRule{
				{Name: "otherUnit", Kind: String, Required: true, MaxLen: 10},
				{Name: "otherPrice", Kind: Number, Required: true, IntDigits: 12, DecDigits: 8},
				{Name: "otherScaled", Kind: Number, Required: true},
				{Name: "packageScaled", Kind: Number, Required: true},
			},
		},
	}
}

// T130Request is the goods upload batch.
func T130Request() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T130",
		Direction:     Request,
		TopLevelArray: true,
		Fields:        goodsRules(),
	}
}

// T130Response echoes failed items back with per item
// returnCode/returnMessage (601 invalid field value).
func T130Response() *Descriptor {
	rules := goodsRules()
	rules = append(rules,
		FieldRule{Name: "returnCode", Kind: String, MaxLen: 4},
		FieldRule{Name: "returnMessage", Kind: String},
	)
	return &Descriptor{
		InterfaceCode: "T130",
		Direction:     Response,
		TopLevelArray: true,
		Fields:        rules,
	}
}
