package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"skillswap_server/models"
	"skillswap_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var (
	// ErrSkillNotFound is returned when a skill lookup comes up empty
	ErrSkillNotFound = errors.New("skill not found")
	// ErrNotOwner is returned when a caller mutates a skill they don't own
	ErrNotOwner = errors.New("not the owner of this skill")
)

// OfferedVersionKey is the cache version key for offered-skill list caches
const OfferedVersionKey = "offered:ver"

// OfferedSkillService handles CRUD and filtered listing for offered skills
type OfferedSkillService struct {
	Dynamo *DynamoService
	Cache  *CacheService
}

// SkillPage is a paginated skill listing
type SkillPage struct {
	Items []models.OfferedSkill `json:"items"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// CreateOffered normalizes and stores a new offered skill
func (os *OfferedSkillService) CreateOffered(ctx context.Context, skill models.OfferedSkill) (*models.OfferedSkill, error) {
	skill.SkillID = uuid.NewString()
	skill.Title = utils.NormalizeSkillTitle(skill.Title)
	skill.Categories = models.NormalizeCategories(skill.Categories)
	skill.Tags = utils.NormalizeTags(skill.Tags)
	if skill.RateType == "" {
		skill.RateType = models.RateTypeSwap
	}
	skill.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := os.Dynamo.PutItem(ctx, models.OfferedSkillsTable, skill); err != nil {
		return nil, err
	}
	os.Cache.BumpVersion(OfferedVersionKey)
	return &skill, nil
}

// GetOffered retrieves a single offered skill
func (os *OfferedSkillService) GetOffered(ctx context.Context, skillID string) (*models.OfferedSkill, error) {
	key := map[string]types.AttributeValue{
		"skillId": &types.AttributeValueMemberS{Value: skillID},
	}
	item, err := os.Dynamo.GetItem(ctx, models.OfferedSkillsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	var skill models.OfferedSkill
	if err := attributevalue.UnmarshalMap(item, &skill); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offered skill: %w", err)
	}
	return &skill, nil
}

// UpdateOffered replaces mutable fields on a skill owned by userID
func (os *OfferedSkillService) UpdateOffered(ctx context.Context, skillID, userID string, updates models.OfferedSkill) (*models.OfferedSkill, error) {
	skill, err := os.GetOffered(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill.UserID != userID {
		return nil, ErrNotOwner
	}

	if updates.Title != "" {
		skill.Title = utils.NormalizeSkillTitle(updates.Title)
	}
	if updates.Description != "" {
		skill.Description = updates.Description
	}
	if len(updates.Categories) > 0 {
		skill.Categories = models.NormalizeCategories(updates.Categories)
	}
	if len(updates.Tags) > 0 {
		skill.Tags = utils.NormalizeTags(updates.Tags)
	}
	if updates.Availability != "" {
		skill.Availability = updates.Availability
	}
	if updates.RateType != "" {
		skill.RateType = updates.RateType
	}
	if updates.RateValue != 0 {
		skill.RateValue = updates.RateValue
	}
	if updates.Location != "" {
		skill.Location = updates.Location
	}
	skill.Remote = updates.Remote

	if err := os.Dynamo.PutItem(ctx, models.OfferedSkillsTable, *skill); err != nil {
		return nil, err
	}
	os.Cache.BumpVersion(OfferedVersionKey)
	return skill, nil
}

// DeleteOffered removes a skill owned by userID
func (os *OfferedSkillService) DeleteOffered(ctx context.Context, skillID, userID string) error {
	skill, err := os.GetOffered(ctx, skillID)
	if err != nil {
		return err
	}
	if skill.UserID != userID {
		return ErrNotOwner
	}
	key := map[string]types.AttributeValue{
		"skillId": &types.AttributeValueMemberS{Value: skillID},
	}
	if err := os.Dynamo.DeleteItem(ctx, models.OfferedSkillsTable, key); err != nil {
		return err
	}
	os.Cache.BumpVersion(OfferedVersionKey)
	return nil
}

// FindOffered returns offered skills matching the filter, newest first when
// no candidate conditions are supplied, store order otherwise.
func (os *OfferedSkillService) FindOffered(ctx context.Context, filter SkillFilter) ([]models.OfferedSkill, error) {
	var skills []models.OfferedSkill
	err := os.Dynamo.ScanWithFilter(ctx, models.OfferedSkillsTable, filter.matchesItem, nil, &skills)
	if err != nil {
		return nil, err
	}
	if filter.Limit > 0 && len(skills) > filter.Limit {
		skills = skills[:filter.Limit]
	}
	return skills, nil
}

// FindOfferedByUser returns all of one user's offered skills through the
// userId GSI, oldest first so the set keeps its insertion order.
func (os *OfferedSkillService) FindOfferedByUser(ctx context.Context, userID string) ([]models.OfferedSkill, error) {
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	items, err := os.Dynamo.QueryItemsWithIndex(ctx, models.OfferedSkillsTable, "userId-index", keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch offered skills: %w", err)
	}
	var skills []models.OfferedSkill
	if err := attributevalue.UnmarshalListOfMaps(items, &skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offered skills: %w", err)
	}
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].CreatedAt < skills[j].CreatedAt
	})
	return skills, nil
}

// ListOffered is the browsing endpoint: optional q/userId/category filters
// plus in-memory pagination, newest first.
func (os *OfferedSkillService) ListOffered(ctx context.Context, q, userID, category string, page, limit int) (*SkillPage, error) {
	filter := SkillFilter{UserID: userID, TitleContains: q, Category: category}
	if q == "" && category == "" {
		// no candidate conditions; only the owner restriction applies
		filter = SkillFilter{UserID: userID}
	}
	skills, err := os.FindOffered(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].CreatedAt > skills[j].CreatedAt
	})
	return paginateOffered(skills, page, limit), nil
}

func paginateOffered(skills []models.OfferedSkill, page, limit int) *SkillPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	total := len(skills)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := skills[start:end]
	if items == nil {
		items = []models.OfferedSkill{}
	}
	return &SkillPage{Items: items, Total: total, Page: page, Limit: limit}
}
