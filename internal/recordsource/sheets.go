package recordsource

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource đọc một worksheet của Google Sheets như một RecordSource (chỉ đọc)
type SheetsSource struct {
	svc           *sheets.Service
	spreadsheetID string
	title         string
	timeout       time.Duration
}

// NewSheetsService tạo client Google Sheets xác thực bằng service account JSON (quyền chỉ đọc)
func NewSheetsService(ctx context.Context, credentialsPath string, extra ...option.ClientOption) (*sheets.Service, error) {
	opts := append([]option.ClientOption{
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	}, extra...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}
	return svc, nil
}

// OpenWorksheet mở worksheet title trong spreadsheet tại spreadsheetURL và kiểm tra worksheet tồn tại.
// timeout > 0 giới hạn thời gian mỗi lần FetchAll.
func OpenWorksheet(ctx context.Context, svc *sheets.Service, spreadsheetURL, title string, timeout time.Duration) (*SheetsSource, error) {
	id, err := ExtractSpreadsheetID(spreadsheetURL)
	if err != nil {
		return nil, err
	}

	ss, err := svc.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("đọc thông tin spreadsheet %s: %w", id, err)
	}

	found := false
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q trong spreadsheet %s", ErrWorksheetNotFound, title, id)
	}

	return &SheetsSource{
		svc:           svc,
		spreadsheetID: id,
		title:         title,
		timeout:       timeout,
	}, nil
}

// Name trả về tên nguồn dùng cho log và metrics
func (s *SheetsSource) Name() string {
	return "sheets"
}

// Title trả về tên worksheet
func (s *SheetsSource) Title() string {
	return s.title
}

// SpreadsheetID trả về ID của spreadsheet
func (s *SheetsSource) SpreadsheetID() string {
	return s.spreadsheetID
}

// FetchAll đọc toàn bộ worksheet (giá trị đã format) và chuyển thành Record theo dòng header
func (s *SheetsSource) FetchAll(ctx context.Context) ([]Record, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, worksheetRange(s.title)).
		ValueRenderOption("FORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("đọc worksheet %q: %w", s.title, err)
	}
	return RowsToRecords(resp.Values), nil
}

// Ping kiểm tra spreadsheet còn truy cập được
func (s *SheetsSource) Ping(ctx context.Context) error {
	if _, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do(); err != nil {
		return fmt.Errorf("ping spreadsheet %s: %w", s.spreadsheetID, err)
	}
	return nil
}
