package repository

import (
	"context"

	"pardarsh/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ReviewRow adds the reviewing official's display name.
type ReviewRow struct {
	domain.Review
	ReviewerName string `json:"reviewerName"`
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) ListByContractor(ctx context.Context, contractorID int64) ([]ReviewRow, error) {
	var rows []ReviewRow
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("reviews.*, reviewer.legal_name AS reviewer_name").
		Joins("LEFT JOIN users AS reviewer ON reviewer.id = reviews.reviewer_id").
		Where("reviews.contractor_id = ?", contractorID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListByContractors fetches reviews for a set of contractors in one query,
// for the directory listing.
func (r *ReviewRepository) ListByContractors(ctx context.Context, contractorIDs []int64) (map[int64][]domain.Review, error) {
	grouped := make(map[int64][]domain.Review, len(contractorIDs))
	if len(contractorIDs) == 0 {
		return grouped, nil
	}

	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("contractor_id IN ?", contractorIDs).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	for _, rv := range reviews {
		grouped[rv.ContractorID] = append(grouped[rv.ContractorID], rv)
	}
	return grouped, nil
}
