package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kanghiee/FIND-SHEEPING-DATE/config"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/logger"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/recordsource"
)

// RecordSources giữ các nguồn dữ liệu mở lúc khởi động
type RecordSources struct {
	// Raw là worksheet trạng thái đổi hàng, nguồn duy nhất được tra cứu
	Raw recordsource.RecordSource
	// Exchange là worksheet đổi hàng nhập tay: được mở để kiểm tra quyền truy cập, không đọc khi tra cứu
	Exchange *recordsource.SheetsSource
}

// InitRecordSources mở record source theo cfg.RecordSource
func InitRecordSources(ctx context.Context, cfg *config.Configuration) (*RecordSources, error) {
	log := logger.WithModule("recordsource")

	switch cfg.RecordSource {
	case config.RecordSourceMemory:
		if cfg.MemorySourceFile == "" {
			log.Warn("RECORD_SOURCE=memory nhưng không có MEMORY_SOURCE_FILE, nguồn dữ liệu rỗng")
			return &RecordSources{Raw: recordsource.NewMemorySource()}, nil
		}
		src, err := recordsource.LoadMemorySourceFile(cfg.MemorySourceFile)
		if err != nil {
			return nil, err
		}
		log.WithField("file", cfg.MemorySourceFile).Info("Loaded memory record source")
		return &RecordSources{Raw: src}, nil

	case config.RecordSourceSheets:
		svc, err := recordsource.NewSheetsService(ctx, cfg.GoogleKeyPath)
		if err != nil {
			return nil, err
		}
		timeout := time.Duration(cfg.SheetsFetchTimeout) * time.Second

		raw, err := recordsource.OpenWorksheet(ctx, svc, cfg.SpreadsheetURLRaw, cfg.SheetNameRaw, timeout)
		if err != nil {
			return nil, fmt.Errorf("open worksheet %q: %w", cfg.SheetNameRaw, err)
		}
		log.WithFields(map[string]interface{}{
			"spreadsheet": raw.SpreadsheetID(),
			"worksheet":   raw.Title(),
		}).Info("Opened exchange status worksheet")

		sources := &RecordSources{Raw: raw}
		if cfg.SpreadsheetURLExchange != "" {
			exchange, err := recordsource.OpenWorksheet(ctx, svc, cfg.SpreadsheetURLExchange, cfg.SheetNameExchange, timeout)
			if err != nil {
				return nil, fmt.Errorf("open worksheet %q: %w", cfg.SheetNameExchange, err)
			}
			sources.Exchange = exchange
			log.WithFields(map[string]interface{}{
				"spreadsheet": exchange.SpreadsheetID(),
				"worksheet":   exchange.Title(),
			}).Info("Opened manual exchange worksheet")
		}
		return sources, nil

	default:
		return nil, fmt.Errorf("unsupported record source %q", cfg.RecordSource)
	}
}
