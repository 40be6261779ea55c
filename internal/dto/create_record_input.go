package dto

// CreateRecordInput carries the raw create form fields. Monetary fields stay
// strings here: the use case coerces absent or unparsable values to zero
// instead of rejecting them.
type CreateRecordInput struct {
	Date                string `json:"date"`
	Store               string `json:"store"`
	OrderNumber         string `json:"orderNumber"`
	InvoiceNumber       string `json:"invoiceNumber"`
	ProductValue        string `json:"productValue"`
	MerchandiseReversed bool   `json:"merchandiseReversed"`
	FreightReversal     string `json:"freightReversal"`
	OrderStatus         string `json:"orderStatus"`
	PaymentStatus       string `json:"paymentStatus"`
	Note                string `json:"note"`
}
