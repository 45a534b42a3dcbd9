package services

import (
	"context"

	"skillswap_server/models"
)

// DynamoMatchStore adapts the resource services to the MatchStore contract
type DynamoMatchStore struct {
	Offered   *OfferedSkillService
	Requested *RequestedSkillService
	Exchanges *ExchangeService
	Users     *UserService
}

// FindOfferedSkills routes owner-only lookups through the userId GSI so the
// result keeps the set's insertion order; candidate lookups go through the
// filtered scan.
func (s *DynamoMatchStore) FindOfferedSkills(ctx context.Context, filter SkillFilter) ([]models.OfferedSkill, error) {
	if filter.UserID != "" && filter.TitleContains == "" && filter.Category == "" && len(filter.CategoriesAny) == 0 {
		return s.Offered.FindOfferedByUser(ctx, filter.UserID)
	}
	return s.Offered.FindOffered(ctx, filter)
}

// FindRequestedSkills mirrors FindOfferedSkills for the wants table
func (s *DynamoMatchStore) FindRequestedSkills(ctx context.Context, filter SkillFilter) ([]models.RequestedSkill, error) {
	if filter.UserID != "" && filter.TitleContains == "" && filter.Category == "" && len(filter.CategoriesAny) == 0 {
		return s.Requested.FindRequestedByUser(ctx, filter.UserID)
	}
	return s.Requested.FindRequested(ctx, filter)
}

// FindActiveExchangeBetween surfaces at most one proposed/accepted exchange
// between the two users, direction-agnostic.
func (s *DynamoMatchStore) FindActiveExchangeBetween(ctx context.Context, userA, userB string) (*models.Exchange, error) {
	return s.Exchanges.FindActiveBetween(ctx, userA, userB)
}

// GetUser enriches match results with the provider's profile
func (s *DynamoMatchStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.Users.GetUser(ctx, userID)
}
