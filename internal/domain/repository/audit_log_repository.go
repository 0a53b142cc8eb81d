package repository

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, auditLog *entity.AuditLog) error
}
