package importer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/monorkin/room-history-import/internal/models"
	"gorm.io/gorm"
)

// ParseRoomLabel splits a label such as "2104" into its floor (the first
// character) and number (the rest, kept as text).
func ParseRoomLabel(label string) (int, string, error) {
	if label == "" {
		return 0, "", &RoomLabelError{Label: label, Err: ErrEmptyRoomLabel}
	}

	first, size := utf8.DecodeRuneInString(label)
	floor, err := strconv.Atoi(string(first))
	if err != nil {
		return 0, "", &RoomLabelError{Label: label, Err: ErrInvalidFloor}
	}

	return floor, label[size:], nil
}

// RoomResolver maps room labels to room ids, inserting rooms on first sight.
// It is not safe for concurrent use.
type RoomResolver struct {
	db      *gorm.DB
	created int
}

func NewRoomResolver(db *gorm.DB) *RoomResolver {
	return &RoomResolver{db: db}
}

// Resolve returns the id of the room named by label. Inserted rooms become
// durable when the surrounding transaction commits.
func (resolver *RoomResolver) Resolve(label string) (uint, error) {
	floor, number, err := ParseRoomLabel(label)
	if err != nil {
		return 0, err
	}

	var room models.Room
	result := resolver.db.
		Where("floor = ? AND number = ?", floor, number).
		Limit(1).
		Find(&room)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to look up room %q: %w", label, result.Error)
	}

	if result.RowsAffected > 0 {
		return room.ID, nil
	}

	room = models.Room{Floor: floor, Number: number}
	if err := resolver.db.Create(&room).Error; err != nil {
		return 0, fmt.Errorf("failed to create room %q: %w", label, err)
	}
	resolver.created++

	return room.ID, nil
}

// Created returns how many rooms this resolver has inserted.
func (resolver *RoomResolver) Created() int {
	return resolver.created
}
