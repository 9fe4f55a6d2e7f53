package models

// SensorReading is one timestamped observation for one room.
type SensorReading struct {
	RoomID      uint      `gorm:"column:room_id"`
	Timestamp   Timestamp `gorm:"column:timestamp;type:datetime"`
	Temperature float64   `gorm:"column:temperature"`
	AirQuality  float64   `gorm:"column:airquality"`
	Daylight    float64   `gorm:"column:daylight"`
	Light       int64     `gorm:"column:light"`
}

func (SensorReading) TableName() string {
	return "sensor_data_history"
}
