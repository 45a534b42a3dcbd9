package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailInUse is returned when registering with an existing email
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a user lookup comes up empty
	ErrUserNotFound = errors.New("user not found")
)

// UserService handles accounts: registration, login, profiles and the
// denormalized rating fields reviews keep up to date.
type UserService struct {
	Dynamo *DynamoService
}

// Register creates a new account with a bcrypt-hashed password
func (us *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := us.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := us.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, err
	}
	log.Printf("Registered user %s (%s)", user.UserID, user.Email)
	return &user, nil
}

// Authenticate verifies email/password and returns the account
func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := us.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by id
func (us *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail looks a user up through the email GSI; nil when absent
func (us *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	keyCondition := "email = :email"
	expressionValues := map[string]types.AttributeValue{
		":email": &types.AttributeValueMemberS{Value: email},
	}
	items, err := us.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.EmailIndex, keyCondition, expressionValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// UpdateProfile applies the allowed profile fields and returns the new state
func (us *UserService) UpdateProfile(ctx context.Context, userID string, updates map[string]string) (*models.User, error) {
	if len(updates) == 0 {
		return us.GetUser(ctx, userID)
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updateExpression := "SET"
	expressionValues := map[string]types.AttributeValue{}
	expressionNames := map[string]string{}
	for field, value := range updates {
		updateExpression += " #" + field + " = :" + field + ","
		expressionNames["#"+field] = field
		expressionValues[":"+field] = &types.AttributeValueMemberS{Value: value}
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	item, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// BumpTokenVersion revokes the user's outstanding refresh tokens
func (us *UserService) BumpTokenVersion(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updateExpression := "SET tokenVersion = tokenVersion + :one"
	expressionValues := map[string]types.AttributeValue{
		":one": &types.AttributeValueMemberN{Value: "1"},
	}
	_, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionValues, nil)
	return err
}

// SetRating writes the denormalized rating fields on a user
func (us *UserService) SetRating(ctx context.Context, userID string, average float64, count int) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updateExpression := "SET averageRating = :avg, reviewsCount = :count"
	expressionValues := map[string]types.AttributeValue{
		":avg":   &types.AttributeValueMemberN{Value: strconv.FormatFloat(average, 'f', -1, 64)},
		":count": &types.AttributeValueMemberN{Value: strconv.Itoa(count)},
	}
	_, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, key, expressionValues, nil)
	return err
}
