package models

// Room is a physical location. Floor and Number are unique together.
type Room struct {
	ID     uint   `gorm:"primaryKey;column:id"`
	Floor  int    `gorm:"column:floor;not null"`
	Number string `gorm:"column:number;not null"`
}

func (Room) TableName() string {
	return "rooms"
}
