package model

import (
	"time"
)

type URL struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	URL         string    `gorm:"type:varchar(2048);not null;uniqueIndex:idx_url,length:512" json:"url"`
	Type        URLType   `gorm:"type:varchar(20);not null" json:"type"`
	EntityID    *uint64   `gorm:"column:entity_id;index:idx_entity_id" json:"entity_id"`
	CreatedDate time.Time `gorm:"column:created_date;autoCreateTime;index:idx_created_date" json:"created_date"`

	// 关联关系
	Entity *Entity        `gorm:"foreignKey:EntityID;references:ID"`
	Posts  []PostAnalysis `gorm:"foreignKey:URLID;references:ID"`
	Blogs  []BlogAnalysis `gorm:"foreignKey:URLID;references:ID"`
}

func (URL) TableName() string {
	return "url"
}
