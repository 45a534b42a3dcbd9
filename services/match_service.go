package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"skillswap_server/models"
)

var (
	// ErrInvalidQuery is returned when neither skillTitle nor category is
	// supplied on the explicit-query path
	ErrInvalidQuery = errors.New("skillTitle or category is required")
	// ErrDependencyUnavailable is returned when the persistence layer fails
	// during a match computation; no partial results are returned
	ErrDependencyUnavailable = errors.New("match dependency unavailable")
)

// NoWantedSkillsMessage guides users who have not listed anything to learn
const NoWantedSkillsMessage = "Add skills you want to learn to find matches"

// perSkillCandidateLimit bounds the candidates fetched per wanted skill
const perSkillCandidateLimit = 10

// MatchStore is the persistence contract the match engine depends on. All
// reads are eventually consistent; the engine never writes.
type MatchStore interface {
	FindOfferedSkills(ctx context.Context, filter SkillFilter) ([]models.OfferedSkill, error)
	FindRequestedSkills(ctx context.Context, filter SkillFilter) ([]models.RequestedSkill, error)
	FindActiveExchangeBetween(ctx context.Context, userA, userB string) (*models.Exchange, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// MatchService computes candidate providers for wanted skills, detects
// mutual interest and attaches existing-exchange state. It is stateless and
// read-only; every invocation is independent.
type MatchService struct {
	Store MatchStore
}

// FindMatchesForQuery finds providers for an explicit skill-title/category
// query and ranks them: mutual matches first, then by provider rating.
func (ms *MatchService) FindMatchesForQuery(ctx context.Context, requesterID string, query models.MatchQuery) (*models.QueryMatchesResponse, error) {
	if query.SkillTitle == "" && query.Category == "" {
		return nil, ErrInvalidQuery
	}

	candidates, err := ms.Store.FindOfferedSkills(ctx, SkillFilter{
		TitleContains: query.SkillTitle,
		Category:      query.Category,
		ExcludeUserID: requesterID,
	})
	if err != nil {
		return nil, dependencyFailure("fetch candidates", err)
	}

	myOffered, err := ms.Store.FindOfferedSkills(ctx, SkillFilter{UserID: requesterID})
	if err != nil {
		return nil, dependencyFailure("fetch own offered skills", err)
	}

	matches := []models.MatchResult{}
	for _, candidate := range candidates {
		if candidate.UserID == requesterID {
			continue
		}

		entry, err := ms.annotateCandidate(ctx, requesterID, candidate.UserID, myOffered)
		if err != nil {
			return nil, err
		}
		entry.Skill = &models.MatchSkillRef{
			SkillID:      candidate.SkillID,
			Title:        candidate.Title,
			Description:  candidate.Description,
			Categories:   candidate.Categories,
			Availability: candidate.Availability,
			Location:     candidate.Location,
			Remote:       candidate.Remote,
		}
		matches = append(matches, *entry)
	}

	rankMatches(matches)

	return &models.QueryMatchesResponse{
		Query:         query,
		TotalMatches:  len(matches),
		MutualMatches: countMutual(matches),
		Matches:       matches,
	}, nil
}

// FindMatchesForUser finds providers for each of the user's wanted skills.
// A provider may appear once per wanted skill that matched them; results
// are aggregated flat and ranked with the same rule as explicit queries.
func (ms *MatchService) FindMatchesForUser(ctx context.Context, userID string) (*models.MyMatchesResponse, error) {
	wants, err := ms.Store.FindRequestedSkills(ctx, SkillFilter{UserID: userID})
	if err != nil {
		return nil, dependencyFailure("fetch wanted skills", err)
	}
	if len(wants) == 0 {
		return &models.MyMatchesResponse{
			Message: NoWantedSkillsMessage,
			Matches: []models.MatchResult{},
		}, nil
	}

	myOffered, err := ms.Store.FindOfferedSkills(ctx, SkillFilter{UserID: userID})
	if err != nil {
		return nil, dependencyFailure("fetch own offered skills", err)
	}

	matches := []models.MatchResult{}
	for _, want := range wants {
		candidates, err := ms.Store.FindOfferedSkills(ctx, SkillFilter{
			TitleContains: want.Title,
			CategoriesAny: want.Categories,
			ExcludeUserID: userID,
			Limit:         perSkillCandidateLimit,
		})
		if err != nil {
			return nil, dependencyFailure("fetch candidates", err)
		}

		for _, candidate := range candidates {
			if candidate.UserID == userID {
				continue
			}

			entry, err := ms.annotateCandidate(ctx, userID, candidate.UserID, myOffered)
			if err != nil {
				return nil, err
			}
			entry.RequestedSkill = &models.RequestedSkillRef{
				SkillID:    want.SkillID,
				Title:      want.Title,
				Categories: want.Categories,
			}
			entry.OfferedSkill = &models.OfferedSkillRef{
				SkillID:     candidate.SkillID,
				Title:       candidate.Title,
				Description: candidate.Description,
				Location:    candidate.Location,
			}
			matches = append(matches, *entry)
		}
	}

	rankMatches(matches)

	return &models.MyMatchesResponse{
		TotalMatches:  len(matches),
		MutualMatches: countMutual(matches),
		Matches:       matches,
	}, nil
}

// annotateCandidate runs the mutuality and existing-exchange checks for one
// candidate provider and enriches the entry with the provider's profile.
func (ms *MatchService) annotateCandidate(ctx context.Context, requesterID, providerID string, myOffered []models.OfferedSkill) (*models.MatchResult, error) {
	providerWants, err := ms.Store.FindRequestedSkills(ctx, SkillFilter{UserID: providerID})
	if err != nil {
		return nil, dependencyFailure("fetch provider wants", err)
	}
	mutualSkills := mutualSkillTitles(myOffered, providerWants)

	exchange, err := ms.Store.FindActiveExchangeBetween(ctx, requesterID, providerID)
	if err != nil {
		return nil, dependencyFailure("fetch exchange state", err)
	}

	provider, err := ms.Store.GetUser(ctx, providerID)
	if err != nil {
		return nil, dependencyFailure("fetch provider profile", err)
	}

	entry := models.MatchResult{
		Provider: models.ProviderSummary{
			UserID:        provider.UserID,
			Name:          provider.Name,
			Email:         provider.Email,
			AvatarURL:     provider.AvatarURL,
			Location:      provider.Location,
			AverageRating: provider.AverageRating,
			ReviewsCount:  provider.ReviewsCount,
		},
		IsMutualMatch: len(mutualSkills) > 0,
		MutualSkills:  mutualSkills,
	}
	if exchange != nil {
		entry.HasActiveExchange = true
		entry.ExchangeStatus = exchange.Status
	}
	return &entry, nil
}

// mutualSkillTitles returns the requester's offered titles that satisfy the
// mutuality heuristic for at least one of the provider's wants, in the
// insertion order of the requester's offered-skill set. The heuristic is a
// deliberately loose bidirectional substring containment on lowercased
// titles; do not tighten it to exact or token matching.
func mutualSkillTitles(myOffered []models.OfferedSkill, providerWants []models.RequestedSkill) []string {
	mutual := []string{}
	for _, mine := range myOffered {
		mineLower := strings.ToLower(mine.Title)
		if mineLower == "" {
			continue
		}
		for _, wanted := range providerWants {
			wantedLower := strings.ToLower(wanted.Title)
			if strings.Contains(wantedLower, mineLower) || strings.Contains(mineLower, wantedLower) {
				mutual = append(mutual, mine.Title)
				break
			}
		}
	}
	return mutual
}

// rankMatches orders mutual matches first, then by provider rating
// descending. The sort is stable so equal entries keep their prior order.
func rankMatches(matches []models.MatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].IsMutualMatch != matches[j].IsMutualMatch {
			return matches[i].IsMutualMatch
		}
		return matches[i].Provider.AverageRating > matches[j].Provider.AverageRating
	})
}

func countMutual(matches []models.MatchResult) int {
	count := 0
	for _, m := range matches {
		if m.IsMutualMatch {
			count++
		}
	}
	return count
}

func dependencyFailure(operation string, err error) error {
	return fmt.Errorf("%w: failed to %s: %v", ErrDependencyUnavailable, operation, err)
}
