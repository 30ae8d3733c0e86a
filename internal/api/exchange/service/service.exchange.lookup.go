// Package exchangesvc chứa nghiệp vụ tra cứu thông tin giao hàng đổi trả từ record source.
package exchangesvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	exchangedto "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/exchange/dto"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/common"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/logger"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/observability"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/recordsource"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/utility"
)

// Tên cột trong worksheet "교환 신청 현황 확인(RAW)"
const (
	ColRecipientName    = "수령자 성함"
	ColContact          = "연락처"
	ColProductName      = "상품명"
	ColExchangeOption   = "교환 출고 옵션"
	ColQuantity         = "수량"
	ColExpectedShipDate = "예상 출고일"
	ColActualShipDate   = "실제 출고일(입고일)"
	ColInvoiceNumber    = "출고 송장 번호"
	ColPaymentMethod    = "지불방법"
)

// DefaultQuantity là giá trị 수량 khi dòng không có cột này
const DefaultQuantity = "미제공"

// LookupResult là kết quả tra cứu: Data theo đúng thứ tự dòng trong sheet.
// Found cho biết có dòng nào khớp hay không.
type LookupResult struct {
	Data  []exchangedto.ExchangeData
	Found bool
}

// ExchangeService tra cứu các dòng đổi trả theo (tên, số điện thoại)
type ExchangeService struct {
	source  recordsource.RecordSource
	metrics *observability.Metrics
}

// NewExchangeService tạo ExchangeService đọc từ source. metrics có thể nil.
func NewExchangeService(source recordsource.RecordSource, metrics *observability.Metrics) (*ExchangeService, error) {
	if source == nil {
		return nil, fmt.Errorf("exchange service: record source is nil")
	}
	return &ExchangeService{source: source, metrics: metrics}, nil
}

// LookupExchangeInfo tìm các dòng có 수령자 성함 == *name và 연락처 (đã trim) == số điện thoại đã chuẩn hóa.
// name nil (request không gửi tên) không khớp dòng nào, kể cả dòng có tên rỗng.
//
// Lỗi trả về:
//   - common.ErrInvalidContactFormat: contact sau khi bỏ "-" không phải 11 chữ số
//   - common.ErrRecordSourceUnavailable: không đọc được record source (lỗi gốc nằm trong Details)
func (s *ExchangeService) LookupExchangeInfo(ctx context.Context, name *string, contact string) (*LookupResult, error) {
	start := time.Now()

	if !utility.IsValidContactNumber(contact) {
		s.metrics.RecordLookup(observability.OutcomeInvalidContact, time.Since(start))
		return nil, common.ErrInvalidContactFormat
	}
	formatted := utility.FormatContactNumber(contact)

	fetchStart := time.Now()
	records, err := s.source.FetchAll(ctx)
	s.metrics.RecordSourceFetch(s.source.Name(), time.Since(fetchStart), len(records), err)
	if err != nil {
		logger.WithModule("exchange").
			WithError(err).
			WithField("source", s.source.Name()).
			Error("Không đọc được record source")
		s.metrics.RecordLookup(observability.OutcomeSourceError, time.Since(start))
		return nil, common.ErrRecordSourceUnavailable.WithDetails(err)
	}

	result := &LookupResult{Data: []exchangedto.ExchangeData{}}
	for _, record := range records {
		if !matches(record, name, formatted) {
			continue
		}
		logger.WithModule("exchange").Infof("조회 성공: %s, %s", *name, formatted)
		result.Found = true
		result.Data = append(result.Data, project(record))
	}

	s.metrics.RecordMatches(len(result.Data))
	outcome := observability.OutcomeNotFound
	if result.Found {
		outcome = observability.OutcomeFound
	}
	s.metrics.RecordLookup(outcome, time.Since(start))

	return result, nil
}

// matches so khớp chính xác tên và số điện thoại; dòng thiếu một trong hai cột thì không khớp
func matches(record recordsource.Record, name *string, formattedContact string) bool {
	if name == nil {
		return false
	}
	rowName, ok := record[ColRecipientName]
	if !ok {
		return false
	}
	rowContact, ok := record[ColContact]
	if !ok {
		return false
	}
	return utility.CellString(rowName) == *name &&
		strings.TrimSpace(utility.CellString(rowContact)) == formattedContact
}

// project chọn các cột trả về cho khách hàng, cột thiếu lấy giá trị mặc định
func project(record recordsource.Record) exchangedto.ExchangeData {
	return exchangedto.ExchangeData{
		ProductName:      utility.GetStringOrDefault(record, ColProductName, ""),
		OptionName:       utility.GetStringOrDefault(record, ColExchangeOption, ""),
		Quantity:         utility.GetOrDefault(record, ColQuantity, DefaultQuantity),
		ExpectedShipDate: utility.GetStringOrDefault(record, ColExpectedShipDate, ""),
		ActualShipDate:   utility.GetStringOrDefault(record, ColActualShipDate, ""),
		InvoiceNumber:    utility.GetStringOrDefault(record, ColInvoiceNumber, ""),
		PaymentMethod:    utility.GetStringOrDefault(record, ColPaymentMethod, ""),
		WithdrawalReason: "",
	}
}
