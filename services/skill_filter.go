package services

import (
	"strings"

	"skillswap_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SkillFilter describes a candidate lookup against a skills table. Title and
// category conditions combine as a union: an item matches when any supplied
// condition holds. ExcludeUserID drops a single owner (used for
// self-exclusion); UserID restricts to one owner.
type SkillFilter struct {
	UserID        string
	TitleContains string
	Category      string
	CategoriesAny []string
	ExcludeUserID string
	Limit         int
}

// matchesItem evaluates the filter against a raw DynamoDB item
func (f SkillFilter) matchesItem(item map[string]types.AttributeValue) bool {
	if f.ExcludeUserID != "" && utils.ExtractString(item, "userId") == f.ExcludeUserID {
		return false
	}
	if f.UserID != "" && utils.ExtractString(item, "userId") != f.UserID {
		return false
	}

	if f.TitleContains == "" && f.Category == "" && len(f.CategoriesAny) == 0 {
		return true
	}

	if f.TitleContains != "" {
		title := strings.ToLower(utils.ExtractString(item, "title"))
		if strings.Contains(title, strings.ToLower(f.TitleContains)) {
			return true
		}
	}
	categories := utils.ExtractStringList(item, "categories")
	if f.Category != "" {
		for _, c := range categories {
			if c == f.Category {
				return true
			}
		}
	}
	for _, want := range f.CategoriesAny {
		for _, c := range categories {
			if c == want {
				return true
			}
		}
	}
	return false
}
