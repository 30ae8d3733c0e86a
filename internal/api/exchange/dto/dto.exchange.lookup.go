// Package exchangedto chứa DTO cho domain Exchange (tra cứu thông tin giao hàng đổi trả).
package exchangedto

// LookupExchangeInput là body của POST /get_product_info
type LookupExchangeInput struct {
	Name    *string `json:"name"`                              // nil khi thiếu key hoặc null, khi đó không khớp dòng nào
	Contact string  `json:"contact" validate:"contact_number"` // có thể có dấu "-"
}

// ExchangeData là một dòng kết quả trả về cho khách hàng.
// Key JSON là nhãn tiếng Hàn mà frontend đang dùng.
type ExchangeData struct {
	ProductName      string      `json:"교환 상품명"`
	OptionName       string      `json:"교환 옵션명"`
	Quantity         interface{} `json:"수량"` // số hoặc chuỗi, mặc định "미제공"
	ExpectedShipDate string      `json:"예상 출고일"`
	ActualShipDate   string      `json:"실제 출고일"`
	InvoiceNumber    string      `json:"송장번호"`
	PaymentMethod    string      `json:"지불방법"`
	WithdrawalReason string      `json:"철회사유"`
}

// LookupDataResponse là response khi có ít nhất một dòng khớp
type LookupDataResponse struct {
	Data []ExchangeData `json:"data"`
}

// LookupMessageResponse là response khi không có dòng nào khớp
type LookupMessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse là response lỗi
type ErrorResponse struct {
	Error string `json:"error"`
}
