package exchangehdl

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exchangesvc "github.com/kanghiee/FIND-SHEEPING-DATE/internal/api/exchange/service"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/common"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/recordsource"
)

func newTestApp(t *testing.T, src *recordsource.MemorySource) *fiber.App {
	t.Helper()
	svc, err := exchangesvc.NewExchangeService(src, nil)
	require.NoError(t, err)
	h, err := NewExchangeHandler(svc)
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/get_product_info", h.HandleGetProductInfo)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/get_product_info", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func sampleSource() *recordsource.MemorySource {
	return recordsource.NewMemorySource(
		recordsource.Record{
			"수령자 성함":      "홍길동",
			"연락처":         "010-1234-5678",
			"상품명":         "자켓",
			"교환 출고 옵션":    "블랙 / L",
			"수량":          int64(1),
			"예상 출고일":      "2024-05-10",
			"실제 출고일(입고일)": "",
			"출고 송장 번호":    "",
			"지불방법":        "카드",
		},
		recordsource.Record{
			"수령자 성함": "홍길동",
			"연락처":    "010-1234-5678",
			"상품명":    "셔츠",
		},
	)
}

func TestHandleGetProductInfo_Data(t *testing.T) {
	app := newTestApp(t, sampleSource())

	status, body := post(t, app, `{"name":"홍길동","contact":"010-1234-5678"}`)
	assert.Equal(t, 200, status)

	data, ok := body["data"].([]interface{})
	require.True(t, ok, "body: %v", body)
	require.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "자켓", first["교환 상품명"])
	assert.Equal(t, "블랙 / L", first["교환 옵션명"])
	assert.Equal(t, 1.0, first["수량"])
	assert.Equal(t, "2024-05-10", first["예상 출고일"])
	assert.Equal(t, "", first["실제 출고일"])
	assert.Equal(t, "", first["송장번호"])
	assert.Equal(t, "카드", first["지불방법"])
	assert.Equal(t, "", first["철회사유"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, "셔츠", second["교환 상품명"])
	assert.Equal(t, "미제공", second["수량"])
}

func TestHandleGetProductInfo_NoRecords(t *testing.T) {
	app := newTestApp(t, sampleSource())

	status, body := post(t, app, `{"name":"없는사람","contact":"01099999999"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, map[string]interface{}{"message": common.MsgNoRecentExchange}, body)
}

func TestHandleGetProductInfo_MissingNameMatchesNothing(t *testing.T) {
	app := newTestApp(t, recordsource.NewMemorySource(recordsource.Record{
		"수령자 성함": "",
		"연락처":    "010-1234-5678",
		"상품명":    "비공개 상품",
	}))

	for _, body := range []string{
		`{"contact":"01012345678"}`,
		`{"name":null,"contact":"01012345678"}`,
	} {
		status, out := post(t, app, body)
		assert.Equal(t, 200, status, body)
		assert.Equal(t, map[string]interface{}{"message": common.MsgNoRecentExchange}, out, body)
	}

	// tên rỗng gửi tường minh vẫn so khớp chính xác
	status, out := post(t, app, `{"name":"","contact":"01012345678"}`)
	assert.Equal(t, 200, status)
	data, ok := out["data"].([]interface{})
	require.True(t, ok, "body: %v", out)
	require.Len(t, data, 1)
	assert.Equal(t, "비공개 상품", data[0].(map[string]interface{})["교환 상품명"])
}

func TestHandleGetProductInfo_BadRequest(t *testing.T) {
	app := newTestApp(t, sampleSource())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"short contact", `{"name":"홍길동","contact":"123"}`, common.MsgInvalidContactFormat},
		{"missing contact", `{"name":"홍길동"}`, common.MsgInvalidContactFormat},
		{"letters", `{"name":"홍길동","contact":"010-abcd-5678"}`, common.MsgInvalidContactFormat},
		{"not json", `name=홍길동`, common.MsgInvalidBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, app, tt.body)
			assert.Equal(t, 400, status)
			assert.Equal(t, map[string]interface{}{"error": tt.want}, body)
		})
	}
}

func TestHandleGetProductInfo_SourceUnavailable(t *testing.T) {
	src := sampleSource()
	src.SetError(errors.New("googleapi: Error 429: quota exceeded"))
	app := newTestApp(t, src)

	status, body := post(t, app, `{"name":"홍길동","contact":"01012345678"}`)
	assert.Equal(t, 503, status)
	assert.Equal(t, map[string]interface{}{"error": common.MsgRecordSourceUnavailable}, body)
}

func TestNewExchangeHandler_NilService(t *testing.T) {
	_, err := NewExchangeHandler(nil)
	assert.Error(t, err)
}
