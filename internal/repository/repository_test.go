package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// WithTx must hand back a repository bound to the transaction, leaving the
// original untouched.
func TestWithTxRebindsHandle(t *testing.T) {
	db := &gorm.DB{}
	tx := &gorm.DB{}

	bookings := NewBookingRepoGorm(db)
	assert.Same(t, tx, bookings.WithTx(tx).(*bookingRepoGorm).db)
	assert.Same(t, db, bookings.db)

	sessions := NewSessionRepoGorm(db)
	assert.Same(t, tx, sessions.WithTx(tx).(*sessionRepoGorm).db)
	assert.Same(t, db, sessions.db)

	packages := NewPackageRepoGorm(db)
	assert.Same(t, tx, packages.WithTx(tx).(*packageRepoGorm).db)

	clients := NewClientRepoGorm(db)
	assert.Same(t, tx, clients.WithTx(tx).(*clientRepoGorm).db)

	admins := NewAdminRepoGorm(db)
	assert.Same(t, tx, admins.WithTx(tx).(*adminRepoGorm).db)

	categories := NewCategoryRepoGorm(db)
	assert.Same(t, tx, categories.WithTx(tx).(*categoryRepoGorm).db)

	destinations := NewDestinationRepoGorm(db)
	assert.Same(t, tx, destinations.WithTx(tx).(*destinationRepoGorm).db)

	reviews := NewReviewRepoGorm(db)
	assert.Same(t, tx, reviews.WithTx(tx).(*reviewRepoGorm).db)
}
