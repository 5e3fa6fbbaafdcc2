package domain

import (
	"time"

	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	"github.com/smallbiznis/subhub/internal/shared"
)

// Record is the flat primitive snapshot of a Subscription. The plan snapshot
// is denormalized into plan_* columns so a row reconstructs without joining
// the live plans table.
type Record struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"type:text;not null;index"`
	Status    string    `gorm:"type:text;not null;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	// snapshot
	PlanID            string    `gorm:"type:text;not null;index"`
	PlanName          string    `gorm:"type:text;not null"`
	PlanDescription   *string   `gorm:"type:text"`
	PlanAmount        float64   `gorm:"type:numeric;not null"`
	PlanCurrency      string    `gorm:"type:text;not null"`
	PlanCycleUnit     string    `gorm:"type:text;not null"`
	PlanCycleInterval int       `gorm:"not null;default:1"`
	PlanIsActive      bool      `gorm:"not null;default:true"`
	PlanCreatedAt     time.Time `gorm:"not null"`
	PlanUpdatedAt     time.Time `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "subscriptions" }

func (s Subscription) Record() Record {
	planRec := s.plan.Record()
	return Record{
		ID:        s.id.String(),
		UserID:    s.userID.String(),
		Status:    string(s.status),
		StartDate: s.startDate,
		EndDate:   s.endDate,

		PlanID:            planRec.ID,
		PlanName:          planRec.Name,
		PlanDescription:   planRec.Description,
		PlanAmount:        planRec.Amount,
		PlanCurrency:      planRec.Currency,
		PlanCycleUnit:     planRec.CycleUnit,
		PlanCycleInterval: planRec.CycleInterval,
		PlanIsActive:      planRec.IsActive,
		PlanCreatedAt:     planRec.CreatedAt,
		PlanUpdatedAt:     planRec.UpdatedAt,

		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}

func FromRecord(rec Record) (Subscription, error) {
	id, err := shared.NewSubscriptionID(rec.ID)
	if err != nil {
		return Subscription{}, err
	}

	userID, err := shared.NewUserID(rec.UserID)
	if err != nil {
		return Subscription{}, err
	}

	status, err := ParseStatus(rec.Status)
	if err != nil {
		return Subscription{}, err
	}

	plan, err := plandomain.FromRecord(plandomain.Record{
		ID:            rec.PlanID,
		Name:          rec.PlanName,
		Description:   rec.PlanDescription,
		Amount:        rec.PlanAmount,
		Currency:      rec.PlanCurrency,
		CycleUnit:     rec.PlanCycleUnit,
		CycleInterval: rec.PlanCycleInterval,
		IsActive:      rec.PlanIsActive,
		CreatedAt:     rec.PlanCreatedAt,
		UpdatedAt:     rec.PlanUpdatedAt,
	})
	if err != nil {
		return Subscription{}, err
	}

	// A cancelled row may carry end_date == start_date when the cancellation
	// was effective immediately at the window open.
	if status != StatusCancelled {
		if err := ensureWindow(rec.StartDate, rec.EndDate); err != nil {
			return Subscription{}, err
		}
	}

	return Subscription{
		id:        id,
		userID:    userID,
		plan:      plan,
		status:    status,
		startDate: rec.StartDate,
		endDate:   rec.EndDate,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
	}, nil
}
