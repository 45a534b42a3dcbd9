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

// RequestedVersionKey is the cache version key for requested-skill list caches
const RequestedVersionKey = "requested:ver"

// RequestedSkillService handles CRUD and filtered listing for requested skills
type RequestedSkillService struct {
	Dynamo *DynamoService
	Cache  *CacheService
}

// RequestedSkillPage is a paginated requested-skill listing
type RequestedSkillPage struct {
	Items []models.RequestedSkill `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}

// CreateRequested normalizes and stores a new requested skill
func (rs *RequestedSkillService) CreateRequested(ctx context.Context, skill models.RequestedSkill) (*models.RequestedSkill, error) {
	skill.SkillID = uuid.NewString()
	skill.Title = utils.NormalizeSkillTitle(skill.Title)
	skill.Categories = models.NormalizeCategories(skill.Categories)
	skill.Tags = utils.NormalizeTags(skill.Tags)
	skill.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := rs.Dynamo.PutItem(ctx, models.RequestedSkillsTable, skill); err != nil {
		return nil, err
	}
	rs.Cache.BumpVersion(RequestedVersionKey)
	return &skill, nil
}

// GetRequested retrieves a single requested skill
func (rs *RequestedSkillService) GetRequested(ctx context.Context, skillID string) (*models.RequestedSkill, error) {
	key := map[string]types.AttributeValue{
		"skillId": &types.AttributeValueMemberS{Value: skillID},
	}
	item, err := rs.Dynamo.GetItem(ctx, models.RequestedSkillsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	var skill models.RequestedSkill
	if err := attributevalue.UnmarshalMap(item, &skill); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requested skill: %w", err)
	}
	return &skill, nil
}

// UpdateRequested replaces mutable fields on a skill owned by userID
func (rs *RequestedSkillService) UpdateRequested(ctx context.Context, skillID, userID string, updates models.RequestedSkill) (*models.RequestedSkill, error) {
	skill, err := rs.GetRequested(ctx, skillID)
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
	if updates.Location != "" {
		skill.Location = updates.Location
	}
	skill.Remote = updates.Remote

	if err := rs.Dynamo.PutItem(ctx, models.RequestedSkillsTable, *skill); err != nil {
		return nil, err
	}
	rs.Cache.BumpVersion(RequestedVersionKey)
	return skill, nil
}

// DeleteRequested removes a skill owned by userID
func (rs *RequestedSkillService) DeleteRequested(ctx context.Context, skillID, userID string) error {
	skill, err := rs.GetRequested(ctx, skillID)
	if err != nil {
		return err
	}
	if skill.UserID != userID {
		return ErrNotOwner
	}
	key := map[string]types.AttributeValue{
		"skillId": &types.AttributeValueMemberS{Value: skillID},
	}
	if err := rs.Dynamo.DeleteItem(ctx, models.RequestedSkillsTable, key); err != nil {
		return err
	}
	rs.Cache.BumpVersion(RequestedVersionKey)
	return nil
}

// FindRequested returns requested skills matching the filter
func (rs *RequestedSkillService) FindRequested(ctx context.Context, filter SkillFilter) ([]models.RequestedSkill, error) {
	var skills []models.RequestedSkill
	err := rs.Dynamo.ScanWithFilter(ctx, models.RequestedSkillsTable, filter.matchesItem, nil, &skills)
	if err != nil {
		return nil, err
	}
	if filter.Limit > 0 && len(skills) > filter.Limit {
		skills = skills[:filter.Limit]
	}
	return skills, nil
}

// FindRequestedByUser returns all of one user's wanted skills through the
// userId GSI, in the index's natural order.
func (rs *RequestedSkillService) FindRequestedByUser(ctx context.Context, userID string) ([]models.RequestedSkill, error) {
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	items, err := rs.Dynamo.QueryItemsWithIndex(ctx, models.RequestedSkillsTable, "userId-index", keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requested skills: %w", err)
	}
	var skills []models.RequestedSkill
	if err := attributevalue.UnmarshalListOfMaps(items, &skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requested skills: %w", err)
	}
	return skills, nil
}

// ListRequested is the browsing endpoint with optional filters and paging
func (rs *RequestedSkillService) ListRequested(ctx context.Context, q, userID, category string, page, limit int) (*RequestedSkillPage, error) {
	filter := SkillFilter{UserID: userID, TitleContains: q, Category: category}
	if q == "" && category == "" {
		filter = SkillFilter{UserID: userID}
	}
	skills, err := rs.FindRequested(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].CreatedAt > skills[j].CreatedAt
	})

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
		items = []models.RequestedSkill{}
	}
	return &RequestedSkillPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}
