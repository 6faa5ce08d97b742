package entity

import "gorm.io/gorm"

// ProtocolEntry is one line of the diagnostic protocol.
//
// Nothing is ever read back from the protocol for processing, it only exists so
// operators can see what the payment provider sent us.
type ProtocolEntry struct {
	gorm.Model
	ReferenceId string `gorm:"type:varchar(255);NOT NULL;index:protocol_refid_idx"`
	Kind        string `gorm:"type:varchar(20);NOT NULL"` // raw, webhook, simulator
	Message     string `gorm:"type:varchar(255);NOT NULL"`
	Details     string `gorm:"type:text"`
	RequestId   string `gorm:"type:varchar(64)"`
}
