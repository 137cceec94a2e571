package service

import (
	"context"

	"staynest-admin-backend/internal/domain"
	"staynest-admin-backend/internal/repository"
)

// directoryService serves the read-only listings and hosts/guests views.
type directoryService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewDirectoryService(listingRepo repository.ListingRepository, userRepo repository.UserRepository) DirectoryService {
	return &directoryService{listingRepo: listingRepo, userRepo: userRepo}
}

func (s *directoryService) ListListings(ctx context.Context) ([]domain.Listing, error) {
	return s.listingRepo.ListAll(ctx)
}

func (s *directoryService) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	return s.listingRepo.GetByID(ctx, id)
}

func (s *directoryService) ListUsers(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	return s.userRepo.ListByRole(ctx, role)
}
