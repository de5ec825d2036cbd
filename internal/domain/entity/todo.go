package entity

import "time"

type Todo struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Description *string    `json:"description" gorm:"type:text"`
	Status      TodoStatus `json:"status" gorm:"type:todo_status_enum;not null;default:'New'"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"type:timestamptz;not null;autoCreateTime"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"type:timestamptz;not null;autoUpdateTime"`
}

func (Todo) TableName() string {
	return "todos"
}
