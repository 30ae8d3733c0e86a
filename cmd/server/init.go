package main

import (
	"github.com/sirupsen/logrus"

	"github.com/kanghiee/FIND-SHEEPING-DATE/config"
	"github.com/kanghiee/FIND-SHEEPING-DATE/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình server
}

// Hàm khởi tạo validator (đăng ký custom validator contact_number)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	global.ServerConfig = cfg
	logrus.WithFields(logrus.Fields{
		"address":       cfg.Address,
		"record_source": cfg.RecordSource,
	}).Info("Initialized server config")
}
