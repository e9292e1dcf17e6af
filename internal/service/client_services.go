package service

import (
	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
)

type ClientServices struct {
	LeaveList   LeaveListService
	AuthService ClientAuthService
	InfoService ClientInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		LeaveList:   NewLeaveListStore(serverAdapter, utils.NewUUIDGenerator(), logger),
		AuthService: NewClientAuthService(serverAdapter, logger),
		InfoService: NewClientInfoService(serverAdapter),
	}
}
