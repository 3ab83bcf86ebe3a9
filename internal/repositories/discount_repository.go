package repositories

import (
	"time"

	"github.com/gyKa/commission-calculator/internal/models"
)

// DiscountRepository holds the weekly allowances. At most one discount may
// exist per (user, week); the store does not enforce that itself, the
// ingestion caller only creates a discount after Find reports none for the
// operation's week.
type DiscountRepository interface {
	Find(userID int, date time.Time) *models.Discount
	Create(user *models.User, periodStart, periodEnd time.Time, amount int64)
}

type discountRepository struct {
	discounts []*models.Discount
}

// NewDiscountRepository creates an empty run-scoped discount store.
func NewDiscountRepository() DiscountRepository {
	return &discountRepository{}
}

// Find returns the discount owned by userID whose period contains date, or
// nil when the user has none for that week.
func (r *discountRepository) Find(userID int, date time.Time) *models.Discount {
	for _, d := range r.discounts {
		if d.User.ID == userID && d.InPeriod(date) {
			return d
		}
	}
	return nil
}

func (r *discountRepository) Create(user *models.User, periodStart, periodEnd time.Time, amount int64) {
	r.discounts = append(r.discounts, &models.Discount{
		User:        user,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Remaining:   amount,
	})
}
