package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var (
	// ErrExchangeNotFound is returned when an exchange lookup comes up empty
	ErrExchangeNotFound = errors.New("exchange not found")
	// ErrNotParticipant is returned when a caller touches an exchange they
	// are not part of
	ErrNotParticipant = errors.New("not a participant of this exchange")
)

// ExchangeService handles the lifecycle of skill-swap agreements
type ExchangeService struct {
	Dynamo        *DynamoService
	Notifications *NotificationService
}

// ExchangePage is a paginated exchange listing
type ExchangePage struct {
	Items []models.Exchange `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// CreateExchange opens a new proposed exchange from requesterID
func (es *ExchangeService) CreateExchange(ctx context.Context, requesterID string, exchange models.Exchange) (*models.Exchange, error) {
	exchange.ExchangeID = uuid.NewString()
	exchange.RequesterID = requesterID
	exchange.Status = models.ExchangeProposed
	exchange.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := es.Dynamo.PutItem(ctx, models.ExchangesTable, exchange); err != nil {
		return nil, err
	}
	log.Printf("Exchange %s proposed by %s to %s", exchange.ExchangeID, exchange.RequesterID, exchange.ProviderID)
	return &exchange, nil
}

// GetExchange retrieves an exchange by id
func (es *ExchangeService) GetExchange(ctx context.Context, exchangeID string) (*models.Exchange, error) {
	key := map[string]types.AttributeValue{
		"exchangeId": &types.AttributeValueMemberS{Value: exchangeID},
	}
	item, err := es.Dynamo.GetItem(ctx, models.ExchangesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrExchangeNotFound
		}
		return nil, err
	}
	var exchange models.Exchange
	if err := attributevalue.UnmarshalMap(item, &exchange); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exchange: %w", err)
	}
	return &exchange, nil
}

// queryByIndex fetches exchanges where userID holds the given role
func (es *ExchangeService) queryByIndex(ctx context.Context, indexName, keyField, userID string) ([]models.Exchange, error) {
	keyCondition := keyField + " = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	items, err := es.Dynamo.QueryItemsWithIndex(ctx, models.ExchangesTable, indexName, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exchanges: %w", err)
	}
	var exchanges []models.Exchange
	if err := attributevalue.UnmarshalListOfMaps(items, &exchanges); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exchanges: %w", err)
	}
	return exchanges, nil
}

// ListExchanges returns the caller's exchanges, filtered by role and status,
// newest first.
func (es *ExchangeService) ListExchanges(ctx context.Context, userID, role, status string, page, limit int) (*ExchangePage, error) {
	var exchanges []models.Exchange

	if role == "requester" || role == "all" || role == "" {
		asRequester, err := es.queryByIndex(ctx, models.RequesterIndex, "requesterId", userID)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, asRequester...)
	}
	if role == "provider" || role == "all" || role == "" {
		asProvider, err := es.queryByIndex(ctx, models.ProviderIndex, "providerId", userID)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, asProvider...)
	}

	if status != "" {
		filtered := exchanges[:0]
		for _, ex := range exchanges {
			if ex.Status == status {
				filtered = append(filtered, ex)
			}
		}
		exchanges = filtered
	}

	sort.SliceStable(exchanges, func(i, j int) bool {
		return exchanges[i].CreatedAt > exchanges[j].CreatedAt
	})

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	total := len(exchanges)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := exchanges[start:end]
	if items == nil {
		items = []models.Exchange{}
	}
	return &ExchangePage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// UpdateExchange applies status/notes/schedule changes on behalf of a
// participant and notifies the other party.
func (es *ExchangeService) UpdateExchange(ctx context.Context, exchangeID, userID, status, notes, scheduledAt string) (*models.Exchange, error) {
	exchange, err := es.GetExchange(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if !exchange.IsParticipant(userID) {
		return nil, ErrNotParticipant
	}

	if status != "" {
		if !models.ValidExchangeStatus(status) {
			return nil, fmt.Errorf("unknown exchange status %q", status)
		}
		exchange.Status = status
		if status == models.ExchangeCompleted {
			exchange.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		}
	}
	if notes != "" {
		exchange.Notes = notes
	}
	if scheduledAt != "" {
		exchange.ScheduledAt = scheduledAt
	}

	if err := es.Dynamo.PutItem(ctx, models.ExchangesTable, *exchange); err != nil {
		return nil, err
	}

	// Best-effort notification; an update must not fail because of it
	other := exchange.OtherParticipant(userID)
	notifyErr := es.Notifications.CreateNotification(ctx, models.Notification{
		UserID: other,
		Type:   models.NotificationTypeExchange,
		Title:  "Exchange updated",
		Body:   "Status: " + exchange.Status,
		Data:   map[string]string{"exchangeId": exchange.ExchangeID},
	})
	if notifyErr != nil {
		log.Printf("Failed to notify %s about exchange %s: %v", other, exchange.ExchangeID, notifyErr)
	}

	return exchange, nil
}

// FindActiveBetween returns a proposed or accepted exchange between the two
// users regardless of who requested it, or nil when none exists.
func (es *ExchangeService) FindActiveBetween(ctx context.Context, userA, userB string) (*models.Exchange, error) {
	asRequester, err := es.queryByIndex(ctx, models.RequesterIndex, "requesterId", userA)
	if err != nil {
		return nil, err
	}
	for _, ex := range asRequester {
		if ex.ProviderID == userB && isActiveStatus(ex.Status) {
			found := ex
			return &found, nil
		}
	}

	asProvider, err := es.queryByIndex(ctx, models.ProviderIndex, "providerId", userA)
	if err != nil {
		return nil, err
	}
	for _, ex := range asProvider {
		if ex.RequesterID == userB && isActiveStatus(ex.Status) {
			found := ex
			return &found, nil
		}
	}
	return nil, nil
}

// FindAcceptedBetween returns an accepted exchange between the two users,
// or nil. Messaging uses this as its connection gate.
func (es *ExchangeService) FindAcceptedBetween(ctx context.Context, userA, userB string) (*models.Exchange, error) {
	exchange, err := es.FindActiveBetween(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if exchange != nil && exchange.Status == models.ExchangeAccepted {
		return exchange, nil
	}
	// An accepted exchange may be shadowed by a later proposed one; check
	// both directions for accepted explicitly.
	asRequester, err := es.queryByIndex(ctx, models.RequesterIndex, "requesterId", userA)
	if err != nil {
		return nil, err
	}
	for _, ex := range asRequester {
		if ex.ProviderID == userB && ex.Status == models.ExchangeAccepted {
			found := ex
			return &found, nil
		}
	}
	asProvider, err := es.queryByIndex(ctx, models.ProviderIndex, "providerId", userA)
	if err != nil {
		return nil, err
	}
	for _, ex := range asProvider {
		if ex.RequesterID == userB && ex.Status == models.ExchangeAccepted {
			found := ex
			return &found, nil
		}
	}
	return nil, nil
}

// ListAcceptedExchanges returns every accepted exchange userID takes part in
func (es *ExchangeService) ListAcceptedExchanges(ctx context.Context, userID string) ([]models.Exchange, error) {
	page, err := es.ListExchanges(ctx, userID, "all", models.ExchangeAccepted, 1, 100)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func isActiveStatus(status string) bool {
	return status == models.ExchangeProposed || status == models.ExchangeAccepted
}
