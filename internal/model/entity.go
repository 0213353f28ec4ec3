package model

import (
	"time"
)

type Entity struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(100)" json:"username"`
	Fullname    string    `gorm:"type:varchar(255)" json:"fullname"`
	Followers   *int64    `json:"followers"`
	Platform    Platform  `gorm:"type:varchar(20);not null;index:idx_platform" json:"platform"`
	CreatedDate time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`

	// 关联关系
	URLs []URL `gorm:"foreignKey:EntityID;references:ID"`
}

func (Entity) TableName() string {
	return "entity"
}
