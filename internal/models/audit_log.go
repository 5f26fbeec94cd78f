package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog is append-only: one row per admin mutation, written best-effort
// after the primary action commits. Never updated or deleted.
type AuditLog struct {
	BaseModel
	AdminID    string          `gorm:"type:uuid;not null;index" json:"adminId"`
	Action     AuditAction     `gorm:"type:varchar(30);not null;index" json:"action"`
	TargetType AuditTargetType `gorm:"type:varchar(20);not null;index:idx_audit_target" json:"targetType"`
	TargetID   string          `gorm:"type:uuid;index:idx_audit_target" json:"targetId,omitempty"`

	Description string         `gorm:"not null" json:"description"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Timestamp time.Time `gorm:"default:now();index" json:"timestamp"`

	Admin *User `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}
