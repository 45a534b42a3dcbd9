package services

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func skillItem(userID, title string, categories ...string) map[string]types.AttributeValue {
	list := make([]types.AttributeValue, 0, len(categories))
	for _, c := range categories {
		list = append(list, &types.AttributeValueMemberS{Value: c})
	}
	return map[string]types.AttributeValue{
		"userId":     &types.AttributeValueMemberS{Value: userID},
		"title":      &types.AttributeValueMemberS{Value: title},
		"categories": &types.AttributeValueMemberL{Value: list},
	}
}

func TestSkillFilterTitleSubstringIsCaseInsensitive(t *testing.T) {
	f := SkillFilter{TitleContains: "guitar"}
	if !f.matchesItem(skillItem("user-b", "Acoustic Guitar Lessons", "Music")) {
		t.Fatal("expected case-insensitive title substring to match")
	}
	if f.matchesItem(skillItem("user-b", "Piano Lessons", "Music")) {
		t.Fatal("unrelated title matched")
	}
}

func TestSkillFilterUnionSemantics(t *testing.T) {
	// Title misses but category hits: the union must still match.
	f := SkillFilter{TitleContains: "Guitar", Category: "Music"}
	if !f.matchesItem(skillItem("user-b", "Violin Lessons", "Music")) {
		t.Fatal("expected category hit to satisfy the union")
	}
	if f.matchesItem(skillItem("user-b", "Violin Lessons", "Teaching")) {
		t.Fatal("item with neither condition matched")
	}
}

func TestSkillFilterCategoriesAnyIntersection(t *testing.T) {
	f := SkillFilter{CategoriesAny: []string{"Music", "Art"}}
	if !f.matchesItem(skillItem("user-b", "Watercolors", "Art")) {
		t.Fatal("expected intersecting category to match")
	}
	if f.matchesItem(skillItem("user-b", "Watercolors", "Cooking")) {
		t.Fatal("disjoint categories matched")
	}
}

func TestSkillFilterExcludesOwner(t *testing.T) {
	f := SkillFilter{TitleContains: "Guitar", ExcludeUserID: "user-a"}
	if f.matchesItem(skillItem("user-a", "Guitar Lessons", "Music")) {
		t.Fatal("excluded owner matched")
	}
	if !f.matchesItem(skillItem("user-b", "Guitar Lessons", "Music")) {
		t.Fatal("other owner should match")
	}
}

func TestSkillFilterOwnerOnlyMatchesEverythingTheyOwn(t *testing.T) {
	f := SkillFilter{UserID: "user-a"}
	if !f.matchesItem(skillItem("user-a", "Anything", "Other")) {
		t.Fatal("owner-scoped filter should match without conditions")
	}
	if f.matchesItem(skillItem("user-b", "Anything", "Other")) {
		t.Fatal("owner-scoped filter matched another owner")
	}
}
