package model

import (
	"time"
)

type Admin struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	HashedPassword string `gorm:"not null"`
	Name           string `gorm:"size:255;not null"`
	Role           string `gorm:"size:50;not null;default:admin"`
	CreatedAt      time.Time
}

type Client struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;not null;uniqueIndex"`
	HashedPassword string `gorm:"not null"`
	Name           string `gorm:"size:255;not null"`
	Phone          string `gorm:"size:50"`
	Address        string `gorm:"type:text"`
	CreatedAt      time.Time
}

type SessionKind string

const (
	SessionKindClient SessionKind = "client"
	SessionKindAdmin  SessionKind = "admin"
)

// Session is a server-side login credential. Lookups always filter on both
// token and kind, so a client token can never pass as an admin one.
type Session struct {
	ID          uint        `gorm:"primaryKey"`
	Token       string      `gorm:"size:64;not null;uniqueIndex"`
	Kind        SessionKind `gorm:"type:varchar(16);not null;index"`
	PrincipalID uint        `gorm:"not null;index"`
	ExpiresAt   time.Time   `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

type Destination struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Country     string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:text"`
	CreatedAt   time.Time
}

type TourPackage struct {
	ID              uint    `gorm:"primaryKey"`
	Title           string  `gorm:"size:255;not null"`
	Description     string  `gorm:"type:text"`
	Price           float64 `gorm:"type:decimal(10,2);not null"`
	DurationDays    int     `gorm:"not null"`
	MaxParticipants int     `gorm:"not null"`
	CategoryID      uint    `gorm:"index"`
	DestinationID   uint    `gorm:"index"`
	ImageURL        string  `gorm:"type:text"`
	Itinerary       string  `gorm:"type:text"`
	Includes        string  `gorm:"type:text"`
	Excludes        string  `gorm:"type:text"`
	IsActive        bool    `gorm:"not null;default:true"`
	CreatedAt       time.Time
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	// Completed is set by post-trip reconciliation, never through the
	// admin status endpoint.
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Booking snapshots the customer contact fields at creation time so the
// record stays meaningful if the client account changes or is removed.
type Booking struct {
	ID            uint `gorm:"primaryKey"`
	ClientID      *uint
	CustomerName  string        `gorm:"size:255;not null"`
	CustomerEmail string        `gorm:"size:255;not null"`
	CustomerPhone string        `gorm:"size:50;not null"`
	TourPackageID uint          `gorm:"not null;index"`
	DepartureDate time.Time     `gorm:"not null"`
	Participants  int           `gorm:"not null"`
	TotalPrice    float64       `gorm:"type:decimal(10,2);not null"`
	Status        BookingStatus `gorm:"type:varchar(50);not null;default:pending"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(50);not null;default:pending"`
	BookingDate   time.Time     `gorm:"autoCreateTime"`
	Notes         string        `gorm:"type:text"`
	InvoiceNumber string        `gorm:"size:100;uniqueIndex"`
}

type Review struct {
	ID            uint `gorm:"primaryKey"`
	TourPackageID uint `gorm:"not null;index"`
	ClientID      *uint
	CustomerName  string `gorm:"size:255;not null"`
	Rating        int    `gorm:"not null"`
	Comment       string `gorm:"type:text"`
	CreatedAt     time.Time
}
