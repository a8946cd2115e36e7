package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is a disbursement to a staff member (salary, bonus, commission).
type Payment struct {
	gorm.Model
	ReceiverID  uint      `json:"receiver_id" gorm:"not null;index"`
	Receiver    User      `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"receiver,omitempty"`
	Amount      float64   `json:"amount" gorm:"not null"`
	PaymentType string    `json:"payment_type" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"type:date"`
}
