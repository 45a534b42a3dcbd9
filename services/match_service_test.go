package services

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"skillswap_server/models"
)

// fakeMatchStore is an in-memory MatchStore. Candidate lookups return the
// configured candidate list minus the excluded owner; owner-scoped lookups
// return the per-user slices as configured.
type fakeMatchStore struct {
	offeredByUser map[string][]models.OfferedSkill
	wantsByUser   map[string][]models.RequestedSkill
	candidates    []models.OfferedSkill
	exchanges     map[string]*models.Exchange
	users         map[string]*models.User
	failWith      error
	calls         int
}

func pairKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "#")
}

func (f *fakeMatchStore) FindOfferedSkills(ctx context.Context, filter SkillFilter) ([]models.OfferedSkill, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if filter.UserID != "" {
		return f.offeredByUser[filter.UserID], nil
	}
	out := []models.OfferedSkill{}
	for _, c := range f.candidates {
		if filter.ExcludeUserID != "" && c.UserID == filter.ExcludeUserID {
			continue
		}
		out = append(out, c)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMatchStore) FindRequestedSkills(ctx context.Context, filter SkillFilter) ([]models.RequestedSkill, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.wantsByUser[filter.UserID], nil
}

func (f *fakeMatchStore) FindActiveExchangeBetween(ctx context.Context, userA, userB string) (*models.Exchange, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.exchanges[pairKey(userA, userB)], nil
}

func (f *fakeMatchStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	f.calls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return &models.User{UserID: userID}, nil
}

func offered(userID, title string) models.OfferedSkill {
	return models.OfferedSkill{SkillID: userID + "-" + title, UserID: userID, Title: title}
}

func requested(userID, title string) models.RequestedSkill {
	return models.RequestedSkill{SkillID: userID + "-" + title, UserID: userID, Title: title}
}

func TestFindMatchesForQueryRequiresCriteria(t *testing.T) {
	store := &fakeMatchStore{}
	ms := &MatchService{Store: store}

	_, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("expected no store calls before validation, got %d", store.calls)
	}
}

func TestFindMatchesForQueryDetectsMutualInterest(t *testing.T) {
	// A offers React Development and queries for Design. B offers Design
	// and wants React, so the pairing is mutual; C offers Design but wants
	// nothing A teaches.
	store := &fakeMatchStore{
		offeredByUser: map[string][]models.OfferedSkill{
			"user-a": {offered("user-a", "React Development")},
		},
		wantsByUser: map[string][]models.RequestedSkill{
			"user-b": {requested("user-b", "React")},
			"user-c": {requested("user-c", "Woodworking")},
		},
		candidates: []models.OfferedSkill{
			offered("user-b", "Graphic Design"),
			offered("user-c", "UI Design"),
		},
		users: map[string]*models.User{
			"user-b": {UserID: "user-b", Name: "Blair", AverageRating: 3.5},
			"user-c": {UserID: "user-c", Name: "Casey", AverageRating: 4.9},
		},
	}
	ms := &MatchService{Store: store}

	result, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{SkillTitle: "Design"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalMatches != 2 || result.MutualMatches != 1 {
		t.Fatalf("expected 2 total / 1 mutual, got %d / %d", result.TotalMatches, result.MutualMatches)
	}

	// Mutual match outranks the higher-rated non-mutual candidate.
	first := result.Matches[0]
	if first.Provider.UserID != "user-b" || !first.IsMutualMatch {
		t.Fatalf("expected user-b mutual first, got %+v", first)
	}
	if !reflect.DeepEqual(first.MutualSkills, []string{"React Development"}) {
		t.Fatalf("unexpected mutual skills: %v", first.MutualSkills)
	}
	second := result.Matches[1]
	if second.Provider.UserID != "user-c" || second.IsMutualMatch {
		t.Fatalf("expected user-c non-mutual second, got %+v", second)
	}
	if len(second.MutualSkills) != 0 {
		t.Fatalf("expected empty mutual skills for user-c, got %v", second.MutualSkills)
	}
}

func TestFindMatchesForQueryExcludesRequester(t *testing.T) {
	store := &fakeMatchStore{
		candidates: []models.OfferedSkill{
			offered("user-a", "Spanish Tutoring"),
			offered("user-b", "Spanish Conversation"),
		},
	}
	ms := &MatchService{Store: store}

	result, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{SkillTitle: "Spanish"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range result.Matches {
		if m.Provider.UserID == "user-a" {
			t.Fatal("requester surfaced as their own match")
		}
	}
	if result.TotalMatches != 1 {
		t.Fatalf("expected 1 match, got %d", result.TotalMatches)
	}
}

func TestFindMatchesForQuerySurfacesActiveExchange(t *testing.T) {
	store := &fakeMatchStore{
		candidates: []models.OfferedSkill{offered("user-b", "Photography")},
		exchanges: map[string]*models.Exchange{
			pairKey("user-a", "user-b"): {ExchangeID: "x1", RequesterID: "user-b", ProviderID: "user-a", Status: models.ExchangeAccepted},
		},
	}
	ms := &MatchService{Store: store}

	result, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{SkillTitle: "Photo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := result.Matches[0]
	if !m.HasActiveExchange || m.ExchangeStatus != models.ExchangeAccepted {
		t.Fatalf("expected accepted exchange surfaced, got %+v", m)
	}
}

func TestFindMatchesForQueryRanksByRatingWithinTier(t *testing.T) {
	store := &fakeMatchStore{
		candidates: []models.OfferedSkill{
			offered("user-b", "Cooking"),
			offered("user-c", "Cooking"),
			offered("user-d", "Cooking"),
		},
		users: map[string]*models.User{
			"user-b": {UserID: "user-b", AverageRating: 2.0},
			"user-c": {UserID: "user-c", AverageRating: 4.5},
			// user-d has no profile rating and sorts last
		},
	}
	ms := &MatchService{Store: store}

	result, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{SkillTitle: "Cooking"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{}
	for _, m := range result.Matches {
		got = append(got, m.Provider.UserID)
	}
	want := []string{"user-c", "user-b", "user-d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestFindMatchesForQueryIsDeterministic(t *testing.T) {
	store := &fakeMatchStore{
		offeredByUser: map[string][]models.OfferedSkill{
			"user-a": {offered("user-a", "Go"), offered("user-a", "Chess")},
		},
		wantsByUser: map[string][]models.RequestedSkill{
			"user-b": {requested("user-b", "Chess")},
		},
		candidates: []models.OfferedSkill{
			offered("user-b", "Piano"),
			offered("user-c", "Piano"),
		},
	}
	ms := &MatchService{Store: store}

	first, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{SkillTitle: "Piano"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{SkillTitle: "Piano"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated identical queries produced different results")
	}
}

func TestFindMatchesForQueryFailsClosed(t *testing.T) {
	store := &fakeMatchStore{failWith: errors.New("throttled")}
	ms := &MatchService{Store: store}

	_, err := ms.FindMatchesForQuery(context.Background(), "user-a", models.MatchQuery{Category: "Music"})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestFindMatchesForUserWithoutWants(t *testing.T) {
	store := &fakeMatchStore{}
	ms := &MatchService{Store: store}

	result, err := ms.FindMatchesForUser(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != NoWantedSkillsMessage {
		t.Fatalf("expected guidance message, got %q", result.Message)
	}
	if result.TotalMatches != 0 || len(result.Matches) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestFindMatchesForUserAggregatesPerWant(t *testing.T) {
	// Two wanted skills that both match user-b's catalogue: user-b must
	// appear once per wanted skill, each entry naming the want it served.
	store := &fakeMatchStore{
		wantsByUser: map[string][]models.RequestedSkill{
			"user-a": {requested("user-a", "Guitar"), requested("user-a", "Singing")},
		},
		candidates: []models.OfferedSkill{offered("user-b", "Music Lessons")},
	}
	ms := &MatchService{Store: store}

	result, err := ms.FindMatchesForUser(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalMatches != 2 {
		t.Fatalf("expected one entry per wanted skill, got %d", result.TotalMatches)
	}
	seen := map[string]bool{}
	for _, m := range result.Matches {
		if m.Provider.UserID != "user-b" {
			t.Fatalf("unexpected provider %s", m.Provider.UserID)
		}
		if m.RequestedSkill == nil || m.OfferedSkill == nil {
			t.Fatalf("per-user match missing skill refs: %+v", m)
		}
		seen[m.RequestedSkill.Title] = true
	}
	if !seen["Guitar"] || !seen["Singing"] {
		t.Fatalf("expected both wants represented, got %v", seen)
	}
}

func TestMutualSkillTitlesSubstringHeuristic(t *testing.T) {
	mine := []models.OfferedSkill{
		offered("user-a", "React Development"),
		offered("user-a", "Yoga"),
		offered("user-a", ""),
	}
	theirWants := []models.RequestedSkill{
		requested("user-b", "react"),
		requested("user-b", "Advanced Yoga Practice"),
	}

	got := mutualSkillTitles(mine, theirWants)
	want := []string{"React Development", "Yoga"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMutualSkillTitlesNoOverlap(t *testing.T) {
	mine := []models.OfferedSkill{offered("user-a", "Welding")}
	theirWants := []models.RequestedSkill{requested("user-b", "French")}

	if got := mutualSkillTitles(mine, theirWants); len(got) != 0 {
		t.Fatalf("expected no mutual titles, got %v", got)
	}
}

func TestCountMutualMatchesRankedPrefix(t *testing.T) {
	matches := []models.MatchResult{
		{IsMutualMatch: true},
		{IsMutualMatch: false},
		{IsMutualMatch: true},
	}
	rankMatches(matches)
	if countMutual(matches) != 2 {
		t.Fatalf("expected 2 mutual, got %d", countMutual(matches))
	}
	if !matches[0].IsMutualMatch || !matches[1].IsMutualMatch || matches[2].IsMutualMatch {
		t.Fatal("expected mutual matches to occupy the ranked prefix")
	}
}
