package schema

// Date layouts used across the catalog. Requests carry
// yyyy-MM-dd HH24:mm:ss; most responses carry dd/MM/yyyy HH:mm:ss.
const (
	LayoutRequestTime  = "2006-01-02 15:04:05"
	LayoutResponseTime = "02/01/2006 15:04:05"
	LayoutDate         = "2006-01-02"
)

// discounted marks a line that either is a whole discounted item ("1") or
// a plain non-discount item ("2"); "0" is the discount amount line itself.
var discounted = In{Field: "discountFlag", Values: []string{"1", "2"}}
var discountLine = Equals{Field: "discountFlag", Value: "0"}

// excise duty is either rate based (exciseRule 1) or quantity based
// (exciseRule 2), never both
var excisePercentage Condition = AllOf{Equals{Field: "exciseFlag", Value: "1"}, Equals{Field: "exciseRule", Value: "1"}}
var excisePerUnit Condition = AllOf{Equals{Field: "exciseFlag", Value: "1"}, Equals{Field: "exciseRule", Value: "2"}}

// goodsDetailRules is the schema of one goodsDetails element for
// invoice/receipt uploads. Credit notes (T110) use creditGoodsDetailRules.
func goodsDetailRules() []FieldRule {
	return []FieldRule{
		{Name: "item", Kind: String, Required: true, MaxLen: 200},
		{Name: "itemCode", Kind: String, Required: true, MaxLen: 50},
		{
			Name: "qty", Kind: Number,
			RequiredWhen: discounted,
			EmptyWhen:    discountLine,
			IntDigits:    12, DecDigits: 8,
			Signs: []SignRule{{When: discounted, Want: Positive}},
		},
		{Name: "unitOfMeasure", Kind: String, RequiredWhen: discounted, MaxLen: 3, Dict: "rateUnit"},
		{
			Name: "unitPrice", Kind: Number,
			RequiredWhen: discounted,
			EmptyWhen:    discountLine,
			IntDigits:    12, DecDigits: 8,
			Signs: []SignRule{{When: discounted, Want: Positive}},
		},
		{
			Name: "total", Kind: Number, Required: true,
			IntDigits: 12, DecDigits: 4,
			Signs: []SignRule{
				{When: discounted, Want: Positive},
				{When: discountLine, Want: Negative},
			},
		},
		{
			Name: "taxRate", Kind: Number, Required: true,
			IntDigits: 1, DecDigits: 4,
			DeemedSentinel: true,
		},
		{
			Name: "tax", Kind: Number, Required: true,
			IntDigits: 12, DecDigits: 4,
			Signs: []SignRule{
				{When: discounted, Want: Positive},
				{When: discountLine, Want: Negative},
			},
		},
		{
			Name: "discountTotal", Kind: Number,
			EmptyWhen: In{Field: "discountFlag", Values: []string{"0", "2"}},
			Signs:     []SignRule{{When: Equals{Field: "discountFlag", Value: "1"}, Want: Negative}},
			IntDigits: 12, DecDigits: 4,
		},
		{Name: "discountTaxRate", Kind: Number, DecDigits: 5},
		{Name: "orderNumber", Kind: Number, Required: true},
		{
			Name: "discountFlag", Kind: String, Required: true, MaxLen: 1,
			Enum: []string{"0", "1", "2"},
			Reject: []ValueReject{
				{When: IsFirst{}, Values: []string{"0"}, Message: "the first line item cannot be 0"},
				{When: IsLast{}, Values: []string{"1"}, Message: "the last line item cannot be 1"},
			},
		},
		{Name: "deemedFlag", Kind: String, Required: true, MaxLen: 1, Enum: []string{"1", "2"}},
		{Name: "exciseFlag", Kind: String, Required: true, MaxLen: 1, Enum: []string{"1", "2"}},
		{Name: "categoryId", Kind: String, RequiredWhen: Equals{Field: "exciseFlag", Value: "1"}, MaxLen: 18},
		{Name: "categoryName", Kind: String, RequiredWhen: Equals{Field: "exciseFlag", Value: "1"}, MaxLen: 1024},
		{Name: "goodsCategoryId", Kind: String, Required: true, MaxLen: 18},
		{Name: "goodsCategoryName", Kind: String, MaxLen: 200},
		{
			Name: "exciseRate", Kind: Number, MaxLen: 21,
			RequiredWhen:   Equals{Field: "exciseFlag", Value: "1"},
			EmptyWhen:      Equals{Field: "exciseFlag", Value: "2"},
			DeemedSentinel: true,
		},
		{
			Name: "exciseRule", Kind: String, MaxLen: 1, Enum: []string{"1", "2"},
			RequiredWhen: Equals{Field: "exciseFlag", Value: "1"},
		},
		{
			Name: "exciseTax", Kind: Number,
			RequiredWhen: Equals{Field: "exciseFlag", Value: "1"},
			IntDigits:    12, DecDigits: 4,
			Signs: []SignRule{{Want: Positive}},
		},
		{
			// pack and stick belong to the per-unit excise branch. The two
			// calculation rules are mutually exclusive, so requiredness is
			// the exclusive-or of the branches narrowed to the per-unit one.
			Name: "pack", Kind: Number,
			RequiredWhen: AllOf{
				Xor{A: excisePercentage, B: excisePerUnit},
				excisePerUnit,
			},
			IntDigits: 12, DecDigits: 8,
			Signs: []SignRule{{Want: Positive}},
		},
		{
			Name: "stick", Kind: Number,
			RequiredWhen: AllOf{
				Xor{A: excisePercentage, B: excisePerUnit},
				excisePerUnit,
			},
			IntDigits: 12, DecDigits: 8,
			Signs: []SignRule{{Want: Positive}},
		},
		{Name: "exciseUnit", Kind: String, MaxLen: 3, Dict: "rateUnit"},
		{
			Name: "exciseCurrency", Kind: String, MaxLen: 10, Dict: "currencyType",
			RequiredWhen: Equals{Field: "exciseRule", Value: "2"},
		},
		{Name: "exciseRateName", Kind: String, MaxLen: 100},
		{Name: "vatApplicableFlag", Kind: String, MaxLen: 1, Enum: []string{"0", "1"}},
		{Name: "deemedExemptCode", Kind: String, MaxLen: 3, Enum: []string{"101", "102"}},
		{Name: "vatProjectId", Kind: String, RequiredWhen: Equals{Field: "deemedFlag", Value: "1"}, MaxLen: 18},
		{Name: "vatProjectName", Kind: String, RequiredWhen: Equals{Field: "deemedFlag", Value: "1"}, MaxLen: 300},
		{Name: "hsCode", Kind: String, MaxLen: 50},
		{Name: "hsName", Kind: String, MaxLen: 1000},
		{Name: "totalWeight", Kind: Number, RequiredWhen: Equals{Field: "basicInformation.invoiceIndustryCode", Value: "102"}},
		{Name: "pieceQty", Kind: Number, RequiredWhen: Equals{Field: "basicInformation.invoiceIndustryCode", Value: "102"}},
		{Name: "pieceMeasureUnit", Kind: String, MaxLen: 3, RequiredWhen: Equals{Field: "basicInformation.invoiceIndustryCode", Value: "102"}},
	}
}

func taxDetailRules() []FieldRule {
	return []FieldRule{
		{Name: "taxCategory", Kind: String, MaxLen: 100},
		{
			Name: "taxCategoryCode", Kind: String, MaxLen: 2,
			Enum: []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11"},
		},
		{
			Name: "netAmount", Kind: Number, Required: true,
			IntDigits: 16, DecDigits: 4,
			Signs: []SignRule{{Want: NonNegative}},
		},
		{Name: "taxRate", Kind: Number, Required: true, IntDigits: 1, DecDigits: 4, DeemedSentinel: true},
		{
			Name: "taxAmount", Kind: Number, Required: true,
			IntDigits: 16, DecDigits: 4,
			Signs: []SignRule{{Want: NonNegative}},
		},
		{
			Name: "grossAmount", Kind: Number, Required: true,
			IntDigits: 16, DecDigits: 4,
			Signs: []SignRule{{Want: NonNegative}},
		},
		{
			Name: "exciseUnit", Kind: String, MaxLen: 3, Dict: "rateUnit",
			RequiredWhen: AllOf{Equals{Field: "taxCategoryCode", Value: "05"}, Present{Field: "exciseCurrency"}},
		},
		{
			Name: "exciseCurrency", Kind: String, MaxLen: 10, Dict: "currencyType",
			RequiredWhen: AllOf{Equals{Field: "taxCategoryCode", Value: "05"}, Present{Field: "exciseUnit"}},
		},
		{
			Name: "taxRateName", Kind: String, MaxLen: 100,
			RequiredWhen: AnyOf{
				Absent{Field: "taxCategoryCode"},
				In{Field: "taxCategoryCode", Values: []string{"05", "10"}},
			},
		},
	}
}

func summaryRules(sign Sign) []FieldRule {
	return []FieldRule{
		{Name: "netAmount", Kind: Number, Required: true, IntDigits: 16, DecDigits: 4, Signs: []SignRule{{Want: sign}}},
		{Name: "taxAmount", Kind: Number, Required: true, IntDigits: 16, DecDigits: 4, Signs: []SignRule{{Want: sign}}},
		{Name: "grossAmount", Kind: Number, Required: true, IntDigits: 16, DecDigits: 4, Signs: []SignRule{{Want: sign}}},
		{Name: "itemCount", Kind: Number, Required: true, MaxLen: 4, EqualsCountOf: "goodsDetails"},
		{Name: "modeCode", Kind: String, Required: true, MaxLen: 1, Enum: []string{"0", "1"}},
		{Name: "remarks", Kind: String, MaxLen: 500},
		{Name: "qrCode", Kind: String, MaxLen: 500, RequiredWhen: Equals{Field: "modeCode", Value: "0"}},
	}
}

func payWayRules() []FieldRule {
	return []FieldRule{
		{Name: "paymentMode", Kind: String, Required: true, Dict: "payWay"},
		{
			Name: "paymentAmount", Kind: Number, Required: true,
			IntDigits: 16,
			Signs:     []SignRule{{Want: NonNegative}},
		},
		{Name: "orderNumber", Kind: String, Required: true, MaxLen: 1},
	}
}

func sellerDetailsRules(dir Direction) []FieldRule {
	rules := []FieldRule{
		{Name: "tin", Kind: String, Required: true, MinLen: 10, MaxLen: 20},
		{Name: "ninBrn", Kind: String, MaxLen: 100},
		{Name: "legalName", Kind: String, Required: true, MaxLen: 256},
		{Name: "businessName", Kind: String, MaxLen: 256},
		{Name: "address", Kind: String, MaxLen: 500},
		{Name: "mobilePhone", Kind: String, MaxLen: 30},
		{Name: "linePhone", Kind: String, MaxLen: 30},
		{Name: "emailAddress", Kind: String, Required: true, MaxLen: 50},
		{Name: "placeOfBusiness", Kind: String, MaxLen: 500},
		{
			Name: "referenceNo", Kind: String, MaxLen: 50,
			RequiredWhen: Equals{Field: "basicInformation.invoiceIndustryCode", Value: "104"},
		},
		{Name: "branchId", Kind: String, MaxLen: 18},
		{Name: "isCheckReferenceNo", Kind: String, MaxLen: 1, Enum: []string{"0", "1"}},
	}
	if dir == Response {
		rules = append(rules,
			FieldRule{Name: "branchName", Kind: String, Required: true, MaxLen: 500},
			FieldRule{Name: "branchCode", Kind: String, MaxLen: 50},
		)
	}
	return rules
}

func basicInformationRules(dir Direction) []FieldRule {
	rules := []FieldRule{
		{Name: "invoiceNo", Kind: String, MaxLen: 20, OmitInRequest: dir == Request, Required: dir == Response},
		{Name: "antifakeCode", Kind: String, MaxLen: 20, OmitInRequest: dir == Request, Required: dir == Response},
		{Name: "deviceNo", Kind: String, Required: true, MaxLen: 20},
		{Name: "issuedDate", Kind: Date, Required: true, Layout: LayoutRequestTime},
		{Name: "operator", Kind: String, Required: true, MaxLen: 150},
		{Name: "currency", Kind: String, Required: true, MaxLen: 10, Dict: "currencyType"},
		{Name: "currencyRate", Kind: Number},
		{
			Name: "oriInvoiceId", Kind: String, MaxLen: 20,
			RequiredWhen: In{Field: "invoiceType", Values: []string{"4", "5"}},
			EmptyWhen:    Equals{Field: "invoiceType", Value: "1"},
		},
		{Name: "invoiceType", Kind: String, Required: true, MaxLen: 1, Enum: []string{"1", "4", "5"}},
		{Name: "invoiceKind", Kind: String, Required: true, MaxLen: 1, Enum: []string{"1", "2"}},
		{
			Name: "dataSource", Kind: String, Required: true, MaxLen: 3,
			Enum: []string{"101", "102", "103", "104", "105", "106", "107", "108"},
		},
		{
			Name: "invoiceIndustryCode", Kind: String, MaxLen: 3,
			Enum: []string{"101", "102", "104", "105", "106", "107", "108", "109", "110", "111", "112"},
		},
		{Name: "isBatch", Kind: String, MaxLen: 1, Enum: []string{"0", "1"}},
	}
	if dir == Response {
		rules = append(rules, FieldRule{Name: "invoiceId", Kind: String, Required: true, MaxLen: 20})
	}
	return rules
}

func buyerDetailsRules() []FieldRule {
	return []FieldRule{
		{
			Name: "buyerTin", Kind: String, MinLen: 10, MaxLen: 20,
			RequiredWhen: In{Field: "buyerType", Values: []string{"0", "3"}},
		},
		{Name: "buyerNinBrn", Kind: String, MaxLen: 100},
		{Name: "buyerPassportNum", Kind: String, MaxLen: 20},
		{Name: "buyerLegalName", Kind: String, MaxLen: 256},
		{Name: "buyerBusinessName", Kind: String, MaxLen: 256},
		{Name: "buyerAddress", Kind: String, MaxLen: 500},
		{Name: "buyerEmail", Kind: String, MaxLen: 50},
		{Name: "buyerMobilePhone", Kind: String, MaxLen: 30},
		{Name: "buyerLinePhone", Kind: String, MaxLen: 30},
		{Name: "buyerPlaceOfBusi", Kind: String, MaxLen: 500},
		{Name: "buyerType", Kind: String, Required: true, MaxLen: 1, Enum: []string{"0", "1", "2", "3"}},
		{Name: "buyerCitizenship", Kind: String, MaxLen: 128},
		{Name: "buyerSector", Kind: String, MaxLen: 200},
		{Name: "buyerReferenceNo", Kind: String, MaxLen: 50},
		{Name: "nonResidentFlag", Kind: String, MaxLen: 1, Enum: []string{"0", "1"}},
		{
			Name: "deliveryTermsCode", Kind: String, MaxLen: 3,
			RequiredWhen: Equals{Field: "basicInformation.invoiceIndustryCode", Value: "102"},
			Enum: []string{"CFR", "CIF", "CIP", "CPT", "DAP", "DDP", "DPU", "EXW", "FAS", "FCA", "FOB"},
		},
	}
}

func buyerExtendRules() []FieldRule {
	return []FieldRule{
		{Name: "propertyType", Kind: String, MaxLen: 50},
		{Name: "district", Kind: String, MaxLen: 50},
		{Name: "municipalityCounty", Kind: String, MaxLen: 50},
		{Name: "divisionSubcounty", Kind: String, MaxLen: 50},
		{Name: "town", Kind: String, MaxLen: 50},
		{Name: "cellVillage", Kind: String, MaxLen: 60},
		{Name: "effectiveRegistrationDate", Kind: Date, Layout: LayoutDate},
		{Name: "meterStatus", Kind: String, MaxLen: 3, Enum: []string{"101", "102"}},
	}
}

func importServicesSellerRules() []FieldRule {
	importedService := Equals{Field: "basicInformation.invoiceIndustryCode", Value: "104"}
	return []FieldRule{
		{Name: "importBusinessName", Kind: String, MaxLen: 500, RequiredWhen: importedService},
		{Name: "importEmailAddress", Kind: String, MinLen: 6, MaxLen: 50},
		{Name: "importContactNumber", Kind: String, MaxLen: 30},
		{Name: "importAddress", Kind: String, MaxLen: 500, RequiredWhen: importedService},
		{Name: "importInvoiceDate", Kind: Date, Required: true, Layout: LayoutDate},
		{Name: "importAttachmentName", Kind: String, MaxLen: 256},
		{Name: "importAttachmentContent", Kind: String},
	}
}

func edcDetailsRules() []FieldRule {
	return []FieldRule{
		{Name: "tankNo", Kind: String, Required: true, MaxLen: 50},
		{Name: "pumpNo", Kind: String, Required: true, MaxLen: 50},
		{Name: "nozzleNo", Kind: String, Required: true, MaxLen: 50},
		{Name: "controllerNo", Kind: String, MaxLen: 50},
		{Name: "acquisitionEquipmentNo", Kind: String, MaxLen: 50},
		{Name: "levelGaugeNo", Kind: String, MaxLen: 50},
		{Name: "mvrn", Kind: String, MaxLen: 32},
		{Name: "updateTimes", Kind: String, MaxLen: 2},
	}
}

func agentEntityRules() []FieldRule {
	return []FieldRule{
		{Name: "tin", Kind: String, MinLen: 10, MaxLen: 20},
		{Name: "legalName", Kind: String, MaxLen: 256},
		{Name: "businessName", Kind: String, MaxLen: 256},
		{Name: "address", Kind: String, MaxLen: 500},
	}
}

func extendRules() []FieldRule {
	return []FieldRule{
		{Name: "reason", Kind: String, MaxLen: 1024},
		{
			Name: "reasonCode", Kind: String, MaxLen: 3,
			RequiredWhen: In{Field: "basicInformation.invoiceType", Values: []string{"4", "5"}},
			Enum:         []string{"101", "102", "103"},
		},
	}
}

// T109Request is the invoice/receipt/debit-note upload document.
func T109Request() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T109",
		Direction:     Request,
		Fields: []FieldRule{
			{Name: "sellerDetails", Kind: Object, Required: true, Fields: sellerDetailsRules(Request)},
			{Name: "basicInformation", Kind: Object, Required: true, Fields: basicInformationRules(Request)},
			{Name: "buyerDetails", Kind: Object, Required: true, Fields: buyerDetailsRules()},
			{Name: "buyerExtend", Kind: Object, Fields: buyerExtendRules()},
			{Name: "goodsDetails", Kind: Array, Required: true, MinItems: 1, Element: goodsDetailRules()},
			{Name: "taxDetails", Kind: Array, Required: true, MinItems: 1, Element: taxDetailRules()},
			{Name: "summary", Kind: Object, Required: true, Fields: summaryRules(NonNegative)},
			{Name: "payWay", Kind: Array, Element: payWayRules()},
			{Name: "extend", Kind: Object, Fields: extendRules()},
			{Name: "importServicesSeller", Kind: Object, Fields: importServicesSellerRules()},
			{Name: "airlineGoodsDetails", Kind: Array, Element: goodsDetailRules()},
			{Name: "edcDetails", Kind: Object, Fields: edcDetailsRules()},
			{Name: "agentEntity", Kind: Object, Fields: agentEntityRules()},
		},
	}
}

// T109Response mirrors the request but the server populates the fiscal
// identifiers the request leaves empty (FDN, antifake code, invoiceId).
func T109Response() *Descriptor {
	return &Descriptor{
		InterfaceCode: "T109",
		Direction:     Response,
		Fields: []FieldRule{
			{Name: "sellerDetails", Kind: Object, Required: true, Fields: sellerDetailsRules(Response)},
			{Name: "basicInformation", Kind: Object, Required: true, Fields: basicInformationRules(Response)},
			{Name: "buyerDetails", Kind: Object, Required: true, Fields: buyerDetailsRules()},
			{Name: "buyerExtend", Kind: Object, Fields: buyerExtendRules()},
			{Name: "goodsDetails", Kind: Array, Required: true, MinItems: 1, Element: goodsDetailRules()},
			{Name: "taxDetails", Kind: Array, Required: true, MinItems: 1, Element: taxDetailRules()},
			{Name: "summary", Kind: Object, Required: true, Fields: summaryRules(NonNegative)},
			{Name: "payWay", Kind: Array, Element: payWayRules()},
			{Name: "extend", Kind: Object, Fields: extendRules()},
			{Name: "importServicesSeller", Kind: Object, Fields: importServicesSellerRules()},
			{Name: "airlineGoodsDetails", Kind: Array, Element: goodsDetailRules()},
			{Name: "edcDetails", Kind: Object, Fields: edcDetailsRules()},
			{
				Name: "existInvoiceList", Kind: Array,
				Element: []FieldRule{
					{Name: "invoiceNo", Kind: String, Required: true, MaxLen: 20},
					{Name: "antifakeCode", Kind: String, Required: true, MaxLen: 20},
					{Name: "qrCode", Kind: String, Required: true, MaxLen: 500},
				},
			},
			{Name: "agentEntity", Kind: Object, Fields: agentEntityRules()},
		},
	}
}
