package repository

import (
	"context"

	"github.com/kyodai-travel/tourbook/internal/model"
	"gorm.io/gorm"
)

type BookingRepo interface {
	WithTx(tx *gorm.DB) BookingRepo
	Create(booking *model.Booking) error
	GetByID(id uint) (*model.Booking, error)
	GetByInvoiceNumber(invoiceNumber string) (*model.Booking, error)
	ListByClientID(clientID uint) ([]model.Booking, error)
	ListByCustomerEmail(email string) ([]model.Booking, error)
	ListAll(status model.BookingStatus) ([]model.Booking, error)
	ListRecent(limit int) ([]model.Booking, error)
	UpdateStatus(id uint, status model.BookingStatus) (int64, error)
	UpdatePaymentStatus(id uint, status model.PaymentStatus) (int64, error)
	Count() (int64, error)
	CountByStatus(status model.BookingStatus) (int64, error)
	SumTotalPricePaid() (float64, error)
}

type bookingRepoGorm struct {
	db *gorm.DB
}

var _ BookingRepo = (*bookingRepoGorm)(nil)

func NewBookingRepoGorm(db *gorm.DB) *bookingRepoGorm {
	return &bookingRepoGorm{
		db: db,
	}
}

func (r *bookingRepoGorm) WithTx(tx *gorm.DB) BookingRepo {
	return &bookingRepoGorm{
		db: tx,
	}
}

func (r *bookingRepoGorm) Create(booking *model.Booking) error {
	ctx := context.Background()
	if err := gorm.G[model.Booking](r.db).Create(ctx, booking); err != nil {
		return err
	}
	return nil
}

func (r *bookingRepoGorm) GetByID(id uint) (*model.Booking, error) {
	ctx := context.Background()
	booking, err := gorm.G[model.Booking](r.db).Where(&model.Booking{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) GetByInvoiceNumber(invoiceNumber string) (*model.Booking, error) {
	ctx := context.Background()
	booking, err := gorm.G[model.Booking](r.db).Where(&model.Booking{InvoiceNumber: invoiceNumber}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) ListByClientID(clientID uint) ([]model.Booking, error) {
	ctx := context.Background()
	bookings, err := gorm.G[model.Booking](r.db).Where("client_id = ?", clientID).Order("booking_date DESC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) ListByCustomerEmail(email string) ([]model.Booking, error) {
	ctx := context.Background()
	bookings, err := gorm.G[model.Booking](r.db).Where(&model.Booking{CustomerEmail: email}).Order("booking_date DESC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) ListAll(status model.BookingStatus) ([]model.Booking, error) {
	ctx := context.Background()
	if status != "" {
		bookings, err := gorm.G[model.Booking](r.db).Where("status = ?", status).Order("booking_date DESC").Find(ctx)
		if err != nil {
			return nil, err
		}
		return bookings, nil
	}
	bookings, err := gorm.G[model.Booking](r.db).Order("booking_date DESC").Find(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) ListRecent(limit int) ([]model.Booking, error) {
	ctx := context.Background()
	bookings, err := gorm.G[model.Booking](r.db).Order("booking_date DESC").Limit(limit).Find(ctx)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) UpdateStatus(id uint, status model.BookingStatus) (int64, error) {
	ctx := context.Background()
	affected, err := gorm.G[model.Booking](r.db).Where(&model.Booking{ID: id}).Update(ctx, "status", status)
	if err != nil {
		return 0, err
	}
	return int64(affected), nil
}

func (r *bookingRepoGorm) UpdatePaymentStatus(id uint, status model.PaymentStatus) (int64, error) {
	ctx := context.Background()
	affected, err := gorm.G[model.Booking](r.db).Where(&model.Booking{ID: id}).Update(ctx, "payment_status", status)
	if err != nil {
		return 0, err
	}
	return int64(affected), nil
}

func (r *bookingRepoGorm) Count() (int64, error) {
	ctx := context.Background()
	count, err := gorm.G[model.Booking](r.db).Count(ctx, "*")
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepoGorm) CountByStatus(status model.BookingStatus) (int64, error) {
	ctx := context.Background()
	count, err := gorm.G[model.Booking](r.db).Where("status = ?", status).Count(ctx, "*")
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepoGorm) SumTotalPricePaid() (float64, error) {
	var total float64
	err := r.db.Model(&model.Booking{}).
		Where("payment_status = ?", model.PaymentStatusPaid).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
