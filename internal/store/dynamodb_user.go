package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoUserRepository stores users in usersTable keyed by email. Every
// taken username owns a marker item {username, email} in usernamesTable;
// the marker and the user item are always written in one transaction.
type dynamoUserRepository struct {
	client         DynamoDBAPI
	usersTable     string
	usernamesTable string
	logger         *logger.Logger
}

func NewDynamoUserRepository(client DynamoDBAPI, usersTable, usernamesTable string, logger *logger.Logger) UserRepository {
	logger.Debug().Str("users_table", usersTable).Str("usernames_table", usernamesTable).Msg("creating dynamodb user repository")
	return &dynamoUserRepository{
		client:         client,
		usersTable:     usersTable,
		usernamesTable: usernamesTable,
		logger:         logger,
	}
}

type usernameMarker struct {
	Username string `dynamodbav:"username"`
	Email    string `dynamodbav:"email"`
}

func emailKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"email": stringAttr(email)}
}

func usernameKey(username string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"username": stringAttr(username)}
}

func (r *dynamoUserRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("error marshalling user: %w", err)
	}
	marker, err := attributevalue.MarshalMap(usernameMarker{Username: user.Username, Email: user.Email})
	if err != nil {
		return fmt.Errorf("error marshalling username marker: %w", err)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.usersTable),
				Item:                     item,
				ConditionExpression:      aws.String("attribute_not_exists(#email)"),
				ExpressionAttributeNames: map[string]string{"#email": "email"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.usernamesTable),
				Item:                     marker,
				ConditionExpression:      aws.String("attribute_not_exists(#username)"),
				ExpressionAttributeNames: map[string]string{"#username": "username"},
			}},
		},
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoUserRepository.CreateUser").Msg("error creating user")
		return transactionError(err, ErrEmailAlreadyExists, ErrUsernameAlreadyExists)
	}

	return nil
}

func (r *dynamoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.usersTable),
		Key:            emailKey(email),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoUserRepository.FindUserByEmail").Msg("error getting user")
		return models.User{}, dynamoError(err)
	}
	if len(out.Item) == 0 {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	if err = attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return models.User{}, fmt.Errorf("error unmarshalling user: %w", err)
	}

	return user, nil
}

func (r *dynamoUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.usernamesTable),
		Key:            usernameKey(username),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoUserRepository.FindUserByUsername").Msg("error getting username marker")
		return models.User{}, dynamoError(err)
	}
	if len(out.Item) == 0 {
		return models.User{}, ErrUserNotFound
	}

	var marker usernameMarker
	if err = attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return models.User{}, fmt.Errorf("error unmarshalling username marker: %w", err)
	}

	return r.FindUserByEmail(ctx, marker.Email)
}

// UpdateProfile writes username and profilePic. When the username changes,
// the new marker is claimed, the old one released and the user item updated
// in one transaction, each leg conditioned on the state read beforehand.
func (r *dynamoUserRepository) UpdateProfile(ctx context.Context, email, username, profilePic string) error {
	log := logger.FromContext(ctx)

	current, err := r.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	update := r.profileUpdate(email, current.Username, username, profilePic)

	if current.Username == username {
		_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 update.TableName,
			Key:                       update.Key,
			UpdateExpression:          update.UpdateExpression,
			ConditionExpression:       update.ConditionExpression,
			ExpressionAttributeNames:  update.ExpressionAttributeNames,
			ExpressionAttributeValues: update.ExpressionAttributeValues,
		})
		var failed *types.ConditionalCheckFailedException
		if errors.As(err, &failed) {
			return ErrUserModified
		}
		if err != nil {
			log.Err(err).Str("func", "*dynamoUserRepository.UpdateProfile").Msg("error updating user")
			return dynamoError(err)
		}
		return nil
	}

	marker, err := attributevalue.MarshalMap(usernameMarker{Username: username, Email: email})
	if err != nil {
		return fmt.Errorf("error marshalling username marker: %w", err)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.usernamesTable),
				Item:                     marker,
				ConditionExpression:      aws.String("attribute_not_exists(#username)"),
				ExpressionAttributeNames: map[string]string{"#username": "username"},
			}},
			{Delete: &types.Delete{
				TableName:                 aws.String(r.usernamesTable),
				Key:                       usernameKey(current.Username),
				ConditionExpression:       aws.String("#email = :email"),
				ExpressionAttributeNames:  map[string]string{"#email": "email"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":email": stringAttr(email)},
			}},
			{Update: update},
		},
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoUserRepository.UpdateProfile").Msg("error changing username")
		return transactionError(err, ErrUsernameAlreadyExists, ErrUserModified, ErrUserModified)
	}

	return nil
}

// profileUpdate sets username and profilePic on an item that still holds
// oldUsername. An empty profilePic removes the attribute.
func (r *dynamoUserRepository) profileUpdate(email, oldUsername, username, profilePic string) *types.Update {
	names := map[string]string{
		"#email":    "email",
		"#username": "username",
		"#pic":      "profilePic",
	}
	values := map[string]types.AttributeValue{
		":old": stringAttr(oldUsername),
		":new": stringAttr(username),
	}

	expression := "SET #username = :new REMOVE #pic"
	if profilePic != "" {
		expression = "SET #username = :new, #pic = :pic"
		values[":pic"] = stringAttr(profilePic)
	}

	return &types.Update{
		TableName:                 aws.String(r.usersTable),
		Key:                       emailKey(email),
		UpdateExpression:          aws.String(expression),
		ConditionExpression:       aws.String("attribute_exists(#email) AND #username = :old"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

func (r *dynamoUserRepository) DeleteUser(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	current, err := r.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:                 aws.String(r.usersTable),
				Key:                       emailKey(email),
				ConditionExpression:       aws.String("attribute_exists(#email) AND #username = :username"),
				ExpressionAttributeNames:  map[string]string{"#email": "email", "#username": "username"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":username": stringAttr(current.Username)},

				ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
			}},
			{Delete: &types.Delete{
				TableName:                 aws.String(r.usernamesTable),
				Key:                       usernameKey(current.Username),
				ConditionExpression:       aws.String("#email = :email"),
				ExpressionAttributeNames:  map[string]string{"#email": "email"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":email": stringAttr(email)},
			}},
		},
	})
	if err != nil {
		if userLegGone(err) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*dynamoUserRepository.DeleteUser").Msg("error deleting user")
		return transactionError(err, ErrUserModified, ErrUserModified)
	}

	return nil
}

// userLegGone reports whether the user leg of a cancelled transaction
// failed its condition because the item no longer exists. A failure with
// an old item means the record changed instead.
func userLegGone(err error) bool {
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) || len(canceled.CancellationReasons) == 0 {
		return false
	}
	reason := canceled.CancellationReasons[0]
	return aws.ToString(reason.Code) == conditionalCheckFailed && len(reason.Item) == 0
}

// AddFavourite appends ngc in a single conditional update. On a failed
// condition the old item tells a missing user apart from a duplicate.
func (r *dynamoUserRepository) AddFavourite(ctx context.Context, email string, ngc int64) error {
	log := logger.FromContext(ctx)

	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.usersTable),
		Key:              emailKey(email),
		UpdateExpression: aws.String("SET #fav = list_append(if_not_exists(#fav, :empty), :ngcList)"),
		ConditionExpression: aws.String(
			"attribute_exists(#email) AND (attribute_not_exists(#fav) OR NOT contains(#fav, :ngc))",
		),
		ExpressionAttributeNames: map[string]string{"#email": "email", "#fav": "favourites"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":ngcList": &types.AttributeValueMemberL{Value: []types.AttributeValue{numberAttr(ngc)}},
			":ngc":     numberAttr(ngc),
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	var failed *types.ConditionalCheckFailedException
	if errors.As(err, &failed) {
		if len(failed.Item) == 0 {
			return ErrUserNotFound
		}
		return ErrFavouriteAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*dynamoUserRepository.AddFavourite").Msg("error adding favourite")
		return dynamoError(err)
	}

	return nil
}

// RemoveFavourite removes the element at the index ngc had when read. The
// condition re-checks that index, so a concurrent change fails the call
// with [ErrFavouritesModified] instead of removing the wrong entry.
func (r *dynamoUserRepository) RemoveFavourite(ctx context.Context, email string, ngc int64) error {
	log := logger.FromContext(ctx)

	user, err := r.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	idx := models.FavouriteIndex(user.Favourites, ngc)
	if idx < 0 {
		return ErrFavouriteNotFound
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.usersTable),
		Key:                                 emailKey(email),
		UpdateExpression:                    aws.String(fmt.Sprintf("REMOVE #fav[%d]", idx)),
		ConditionExpression:                 aws.String(fmt.Sprintf("#fav[%d] = :ngc", idx)),
		ExpressionAttributeNames:            map[string]string{"#fav": "favourites"},
		ExpressionAttributeValues:           map[string]types.AttributeValue{":ngc": numberAttr(ngc)},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	var failed *types.ConditionalCheckFailedException
	if errors.As(err, &failed) {
		if len(failed.Item) == 0 {
			return ErrUserNotFound
		}
		return ErrFavouritesModified
	}
	if err != nil {
		log.Err(err).Str("func", "*dynamoUserRepository.RemoveFavourite").Msg("error removing favourite")
		return dynamoError(err)
	}

	return nil
}
