package contractor

import (
	"context"
	"errors"

	"pardarsh/internal/domain"
	"pardarsh/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	users    UserRepositoryInterface
	reviews  ReviewRepositoryInterface
	projects ProjectReader
}

func NewService(users UserRepositoryInterface, reviews ReviewRepositoryInterface, projects ProjectReader) *Service {
	return &Service{users: users, reviews: reviews, projects: projects}
}

func (s *Service) List(ctx context.Context) ([]ContractorListing, error) {
	contractors, err := s.users.ListContractors(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(contractors))
	for _, c := range contractors {
		ids = append(ids, c.ID)
	}

	grouped, err := s.reviews.ListByContractors(ctx, ids)
	if err != nil {
		return nil, err
	}

	listings := make([]ContractorListing, 0, len(contractors))
	for _, c := range contractors {
		reviews := grouped[c.ID]
		if reviews == nil {
			reviews = []domain.Review{}
		}
		listings = append(listings, ContractorListing{User: c, Reviews: reviews})
	}
	return listings, nil
}

// Get assembles contractor, their projects and their reviews in one read.
func (s *Service) Get(ctx context.Context, id int64) (*ContractorProfile, error) {
	c, err := s.users.GetContractor(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	projects, err := s.projects.ListByContractor(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByContractor(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ContractorProfile{
		Contractor: c,
		Projects:   projects,
		Reviews:    reviews,
	}, nil
}

func (s *Service) ListProjects(ctx context.Context, contractorID int64) ([]repository.ProjectRow, error) {
	return s.projects.ListByContractor(ctx, contractorID)
}

func (s *Service) AddReview(ctx context.Context, contractorID, reviewerID int64, req AddReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.users.GetContractor(ctx, contractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		ContractorID: contractorID,
		ProjectID:    req.ProjectID,
		ReviewerID:   reviewerID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// UpdateFaithScore is a direct overwrite by an official. The score is not
// derived from reviews and is deliberately unclamped.
func (s *Service) UpdateFaithScore(ctx context.Context, contractorID int64, score float64) (*domain.User, error) {
	u, err := s.users.UpdateFaithScore(ctx, contractorID, score)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
