package recordsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const testSheetTitle = "교환 신청 현황 확인(RAW)"

// newFakeSheetsService dựng Sheets API giả: metadata trả về một worksheet, values trả về bảng cố định
func newFakeSheetsService(t *testing.T, failValues bool) *sheets.Service {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "/values/"):
			if failValues {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))
				return
			}
			assert.Equal(t, "FORMATTED_VALUE", r.URL.Query().Get("valueRenderOption"))
			assert.Contains(t, r.URL.Path, testSheetTitle)
			_, _ = w.Write([]byte(`{
				"range": "'교환 신청 현황 확인(RAW)'!A1:C3",
				"majorDimension": "ROWS",
				"values": [
					["수령자 성함", "연락처", "수량"],
					["홍길동", "010-1234-5678", "2"],
					["김철수", "010-9876-5432"]
				]
			}`))
		case strings.HasSuffix(r.URL.Path, "/v4/spreadsheets/sheet-id"):
			_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-id","sheets":[{"properties":{"title":"교환 신청 현황 확인(RAW)"}},{"properties":{"title":"[수기] 자사몰 교환"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":404,"message":"not found"}}`))
		}
	}))
	t.Cleanup(srv.Close)

	svc, err := sheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return svc
}

func TestSheetsSource_FetchAll(t *testing.T) {
	svc := newFakeSheetsService(t, false)
	ctx := context.Background()

	src, err := OpenWorksheet(ctx, svc, "https://docs.google.com/spreadsheets/d/sheet-id/edit#gid=0", testSheetTitle, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "sheet-id", src.SpreadsheetID())
	assert.Equal(t, testSheetTitle, src.Title())
	assert.Equal(t, "sheets", src.Name())

	rows, err := src.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Record{"수령자 성함": "홍길동", "연락처": "010-1234-5678", "수량": int64(2)}, rows[0])
	assert.Equal(t, "", rows[1]["수량"])

	assert.NoError(t, src.Ping(ctx))
}

func TestOpenWorksheet_Errors(t *testing.T) {
	svc := newFakeSheetsService(t, false)
	ctx := context.Background()

	_, err := OpenWorksheet(ctx, svc, "https://docs.google.com/spreadsheets/d/sheet-id/edit", "없는 시트", 0)
	assert.ErrorIs(t, err, ErrWorksheetNotFound)

	_, err = OpenWorksheet(ctx, svc, "not a url", testSheetTitle, 0)
	assert.ErrorIs(t, err, ErrInvalidSpreadsheetURL)

	_, err = OpenWorksheet(ctx, svc, "https://docs.google.com/spreadsheets/d/other-id/edit", testSheetTitle, 0)
	assert.Error(t, err)
}

func TestSheetsSource_FetchAllError(t *testing.T) {
	svc := newFakeSheetsService(t, true)
	ctx := context.Background()

	src, err := OpenWorksheet(ctx, svc, "https://docs.google.com/spreadsheets/d/sheet-id/edit", testSheetTitle, time.Second)
	require.NoError(t, err)

	_, err = src.FetchAll(ctx)
	assert.Error(t, err)
}
