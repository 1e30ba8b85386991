package model

// Invoice is the T108/T109/T186 document graph. All amount fields stay
// decimal strings on the wire; precision rules are enforced on the string
// form, never on floats.
type Invoice struct {
	SellerDetails        SellerDetails         `json:"sellerDetails"`
	BasicInformation     BasicInformation      `json:"basicInformation"`
	BuyerDetails         BuyerDetails          `json:"buyerDetails"`
	BuyerExtend          *BuyerExtend          `json:"buyerExtend,omitempty"`
	GoodsDetails         []GoodsDetail         `json:"goodsDetails"`
	TaxDetails           []TaxDetail           `json:"taxDetails"`
	Summary              Summary               `json:"summary"`
	PayWay               []PayWay              `json:"payWay,omitempty"`
	Extend               *Extend               `json:"extend,omitempty"`
	ImportServicesSeller *ImportServicesSeller `json:"importServicesSeller,omitempty"`
	AirlineGoodsDetails  []GoodsDetail         `json:"airlineGoodsDetails,omitempty"`
	EdcDetails           *EdcDetails           `json:"edcDetails,omitempty"`
	AgentEntity          *AgentEntity          `json:"agentEntity,omitempty"`
	CreditNoteExtend     *CreditNoteExtend     `json:"creditNoteExtend,omitempty"`
}

type SellerDetails struct {
	Tin                string `json:"tin"`
	NinBrn             string `json:"ninBrn,omitempty"`
	LegalName          string `json:"legalName"`
	BusinessName       string `json:"businessName,omitempty"`
	Address            string `json:"address,omitempty"`
	MobilePhone        string `json:"mobilePhone,omitempty"`
	LinePhone          string `json:"linePhone,omitempty"`
	EmailAddress       string `json:"emailAddress"`
	PlaceOfBusiness    string `json:"placeOfBusiness,omitempty"`
	ReferenceNo        string `json:"referenceNo"`
	BranchID           string `json:"branchId,omitempty"`
	IsCheckReferenceNo string `json:"isCheckReferenceNo,omitempty"`
	BranchName         string `json:"branchName,omitempty"`
	BranchCode         string `json:"branchCode,omitempty"`
}

type BasicInformation struct {
	InvoiceID           string `json:"invoiceId,omitempty"`
	// InvoiceNo is the Fiscal Document Number assigned by the server.
	// Left empty in the request.
	InvoiceNo           string `json:"invoiceNo,omitempty"`
	AntifakeCode        string `json:"antifakeCode,omitempty"`
	DeviceNo            string `json:"deviceNo"`
	IssuedDate          string `json:"issuedDate"`
	Operator            string `json:"operator"`
	Currency            string `json:"currency"`
	CurrencyRate        string `json:"currencyRate,omitempty"`
	OriInvoiceID        string `json:"oriInvoiceId,omitempty"`
	OriInvoiceNo        string `json:"oriInvoiceNo,omitempty"`
	InvoiceType         string `json:"invoiceType"`
	InvoiceKind         string `json:"invoiceKind"`
	DataSource          string `json:"dataSource"`
	InvoiceIndustryCode string `json:"invoiceIndustryCode,omitempty"`
	IsBatch             string `json:"isBatch,omitempty"`
}

type BuyerDetails struct {
	BuyerTin          string `json:"buyerTin,omitempty"`
	BuyerNinBrn       string `json:"buyerNinBrn,omitempty"`
	BuyerPassportNum  string `json:"buyerPassportNum,omitempty"`
	BuyerLegalName    string `json:"buyerLegalName,omitempty"`
	BuyerBusinessName string `json:"buyerBusinessName,omitempty"`
	BuyerAddress      string `json:"buyerAddress,omitempty"`
	BuyerEmail        string `json:"buyerEmail,omitempty"`
	BuyerMobilePhone  string `json:"buyerMobilePhone,omitempty"`
	BuyerLinePhone    string `json:"buyerLinePhone,omitempty"`
	BuyerPlaceOfBusi  string `json:"buyerPlaceOfBusi,omitempty"`
	BuyerType         string `json:"buyerType"`
	BuyerCitizenship  string `json:"buyerCitizenship,omitempty"`
	BuyerSector       string `json:"buyerSector,omitempty"`
	BuyerReferenceNo  string `json:"buyerReferenceNo,omitempty"`
	NonResidentFlag   string `json:"nonResidentFlag,omitempty"`
	DeliveryTermsCode string `json:"deliveryTermsCode,omitempty"`
}

type BuyerExtend struct {
	PropertyType              string `json:"propertyType,omitempty"`
	District                  string `json:"district,omitempty"`
	MunicipalityCounty        string `json:"municipalityCounty,omitempty"`
	DivisionSubcounty         string `json:"divisionSubcounty,omitempty"`
	Town                      string `json:"town,omitempty"`
	CellVillage               string `json:"cellVillage,omitempty"`
	EffectiveRegistrationDate string `json:"effectiveRegistrationDate,omitempty"`
	MeterStatus               string `json:"meterStatus,omitempty"`
}

type GoodsDetail struct {
	Item              string `json:"item"`
	ItemCode          string `json:"itemCode"`
	Qty               string `json:"qty,omitempty"`
	UnitOfMeasure     string `json:"unitOfMeasure,omitempty"`
	UnitPrice         string `json:"unitPrice,omitempty"`
	Total             string `json:"total"`
	TaxRate           string `json:"taxRate"`
	Tax               string `json:"tax"`
	DiscountTotal     string `json:"discountTotal,omitempty"`
	DiscountTaxRate   string `json:"discountTaxRate,omitempty"`
	OrderNumber       string `json:"orderNumber"`
	DiscountFlag      string `json:"discountFlag"`
	DeemedFlag        string `json:"deemedFlag"`
	ExciseFlag        string `json:"exciseFlag"`
	CategoryID        string `json:"categoryId,omitempty"`
	CategoryName      string `json:"categoryName,omitempty"`
	GoodsCategoryID   string `json:"goodsCategoryId"`
	GoodsCategoryName string `json:"goodsCategoryName,omitempty"`
	ExciseRate        string `json:"exciseRate,omitempty"`
	ExciseRule        string `json:"exciseRule,omitempty"`
	ExciseTax         string `json:"exciseTax,omitempty"`
	Pack              string `json:"pack,omitempty"`
	Stick             string `json:"stick,omitempty"`
	ExciseUnit        string `json:"exciseUnit,omitempty"`
	ExciseCurrency    string `json:"exciseCurrency,omitempty"`
	ExciseRateName    string `json:"exciseRateName,omitempty"`
	VatApplicableFlag string `json:"vatApplicableFlag,omitempty"`
	DeemedExemptCode  string `json:"deemedExemptCode,omitempty"`
	VatProjectID      string `json:"vatProjectId,omitempty"`
	VatProjectName    string `json:"vatProjectName,omitempty"`
	HsCode            string `json:"hsCode,omitempty"`
	HsName            string `json:"hsName,omitempty"`
	TotalWeight       string `json:"totalWeight,omitempty"`
	PieceQty          string `json:"pieceQty,omitempty"`
	PieceMeasureUnit  string `json:"pieceMeasureUnit,omitempty"`
}

type TaxDetail struct {
	TaxCategory     string `json:"taxCategory,omitempty"`
	TaxCategoryCode string `json:"taxCategoryCode,omitempty"`
	NetAmount       string `json:"netAmount"`
	TaxRate         string `json:"taxRate"`
	TaxAmount       string `json:"taxAmount"`
	GrossAmount     string `json:"grossAmount"`
	ExciseUnit      string `json:"exciseUnit,omitempty"`
	ExciseCurrency  string `json:"exciseCurrency,omitempty"`
	TaxRateName     string `json:"taxRateName,omitempty"`
}

type Summary struct {
	NetAmount   string `json:"netAmount"`
	TaxAmount   string `json:"taxAmount"`
	GrossAmount string `json:"grossAmount"`
	ItemCount   string `json:"itemCount"`
	ModeCode    string `json:"modeCode"`
	Remarks     string `json:"remarks,omitempty"`
	QrCode      string `json:"qrCode,omitempty"`
}

type PayWay struct {
	PaymentMode   string `json:"paymentMode"`
	PaymentAmount string `json:"paymentAmount"`
	OrderNumber   string `json:"orderNumber"`
}

type Extend struct {
	Reason     string `json:"reason,omitempty"`
	ReasonCode string `json:"reasonCode,omitempty"`
}

type ImportServicesSeller struct {
	ImportBusinessName      string `json:"importBusinessName,omitempty"`
	ImportEmailAddress      string `json:"importEmailAddress,omitempty"`
	ImportContactNumber     string `json:"importContactNumber,omitempty"`
	ImportAddress           string `json:"importAddress,omitempty"`
	ImportInvoiceDate       string `json:"importInvoiceDate"`
	ImportAttachmentName    string `json:"importAttachmentName,omitempty"`
	ImportAttachmentContent string `json:"importAttachmentContent,omitempty"`
}

type EdcDetails struct {
	TankNo                 string `json:"tankNo"`
	PumpNo                 string `json:"pumpNo"`
	NozzleNo               string `json:"nozzleNo"`
	ControllerNo           string `json:"controllerNo,omitempty"`
	AcquisitionEquipmentNo string `json:"acquisitionEquipmentNo,omitempty"`
	LevelGaugeNo           string `json:"levelGaugeNo,omitempty"`
	Mvrn                   string `json:"mvrn,omitempty"`
	UpdateTimes            string `json:"updateTimes,omitempty"`
}

type AgentEntity struct {
	Tin          string `json:"tin,omitempty"`
	LegalName    string `json:"legalName,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	Address      string `json:"address,omitempty"`
}

// CreditNoteApplication is the T110 request document. Line amounts are
// negative mirrors of the original invoice lines.
type CreditNoteApplication struct {
	OriInvoiceID             string        `json:"oriInvoiceId"`
	OriInvoiceNo             string        `json:"oriInvoiceNo"`
	ReasonCode               string        `json:"reasonCode"`
	Reason                   string        `json:"reason,omitempty"`
	ApplicationTime          string        `json:"applicationTime"`
	InvoiceApplyCategoryCode string        `json:"invoiceApplyCategoryCode"`
	Currency                 string        `json:"currency"`
	ContactName              string        `json:"contactName,omitempty"`
	ContactMobileNum         string        `json:"contactMobileNum,omitempty"`
	ContactEmail             string        `json:"contactEmail,omitempty"`
	Source                   string        `json:"source"`
	Remarks                  string        `json:"remarks,omitempty"`
	SellersReferenceNo       string        `json:"sellersReferenceNo,omitempty"`
	GoodsDetails             []GoodsDetail `json:"goodsDetails"`
	TaxDetails               []TaxDetail   `json:"taxDetails"`
	Summary                  Summary       `json:"summary"`
	PayWay                   []PayWay      `json:"payWay,omitempty"`
	BuyerDetails             *BuyerDetails `json:"buyerDetails,omitempty"`
}

type CreditNoteExtend struct {
	OriInvoiceNo string `json:"oriInvoiceNo,omitempty"`
	CurrencyRate string `json:"currencyRate,omitempty"`
}

// ExistInvoice is one entry of a T109 response existInvoiceList: an
// already fiscalised document identified by its antifake code.
type ExistInvoice struct {
	InvoiceNo    string `json:"invoiceNo"`
	AntifakeCode string `json:"antifakeCode"`
	QrCode       string `json:"qrCode"`
}
