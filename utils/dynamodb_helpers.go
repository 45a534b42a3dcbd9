package utils

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractNumber safely extracts a numeric attribute as float64
func ExtractNumber(item map[string]types.AttributeValue, field string) float64 {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberN); ok {
			if n, err := strconv.ParseFloat(v.Value, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

// ExtractStringList extracts a list-of-strings attribute
func ExtractStringList(item map[string]types.AttributeValue, field string) []string {
	var values []string
	if attr, ok := item[field]; ok {
		if list, ok := attr.(*types.AttributeValueMemberL); ok {
			for _, entry := range list.Value {
				if v, ok := entry.(*types.AttributeValueMemberS); ok {
					values = append(values, v.Value)
				}
			}
		}
	}
	return values
}
