package model

// Envelope is the outer transport wrapper common to all interfaces.
// The payload is divided into three parts: data, globalInfo and
// returnStateInfo.
type Envelope struct {
	Data            Data            `json:"data"`
	GlobalInfo      GlobalInfo      `json:"globalInfo"`
	ReturnStateInfo ReturnStateInfo `json:"returnStateInfo"`
}

type Data struct {
	// Content is empty only when the inner message is empty, otherwise
	// it is BASE64 encoded regardless of encryption.
	Content         string          `json:"content"`
	Signature       string          `json:"signature"`
	DataDescription DataDescription `json:"dataDescription"`
}

type DataDescription struct {
	// CodeType: "0" plain text, "1" ciphertext
	CodeType string `json:"codeType"`
	// EncryptCode takes effect when CodeType is "1": "1" RSA, "2" AES
	EncryptCode string `json:"encryptCode"`
	// ZipCode: "0" uncompressed, "1" compressed
	ZipCode string `json:"zipCode"`
}

type GlobalInfo struct {
	AppID          string       `json:"appId"`
	Version        string       `json:"version"`
	DataExchangeID string       `json:"dataExchangeId"`
	InterfaceCode  string       `json:"interfaceCode"`
	RequestCode    string       `json:"requestCode"`
	RequestTime    string       `json:"requestTime"`
	ResponseCode   string       `json:"responseCode"`
	UserName       string       `json:"userName"`
	DeviceMAC      string       `json:"deviceMAC"`
	DeviceNo       string       `json:"deviceNo"`
	Tin            string       `json:"tin"`
	Brn            string       `json:"brn"`
	TaxpayerID     string       `json:"taxpayerID"`
	Longitude      string       `json:"longitude"`
	Latitude       string       `json:"latitude"`
	AgentType      string       `json:"agentType"`
	ExtendField    *ExtendField `json:"extendField,omitempty"`
}

// ExtendField is reserved extension data; the server uses it to echo
// summary details for T109 class uploads.
type ExtendField struct {
	ResponseDateFormat      string                   `json:"responseDateFormat,omitempty"`
	ResponseTimeFormat      string                   `json:"responseTimeFormat,omitempty"`
	ReferenceNo             string                   `json:"referenceNo,omitempty"`
	OperatorName            string                   `json:"operatorName,omitempty"`
	ItemDescription         string                   `json:"itemDescription,omitempty"`
	Currency                string                   `json:"currency,omitempty"`
	GrossAmount             string                   `json:"grossAmount,omitempty"`
	TaxAmount               string                   `json:"taxAmount,omitempty"`
	OfflineInvoiceException *OfflineInvoiceException `json:"offlineInvoiceException,omitempty"`
}

type OfflineInvoiceException struct {
	ErrorCode string `json:"errorCode"`
	ErrorMsg  string `json:"errorMsg"`
}

type ReturnStateInfo struct {
	ReturnCode    string `json:"returnCode"`
	ReturnMessage string `json:"returnMessage"`
}

// Success reports whether the server accepted the request. An empty code
// is what requests carry before the server fills the state in.
func (r ReturnStateInfo) Success() bool {
	return r.ReturnCode == "00"
}
