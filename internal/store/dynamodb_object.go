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

type dynamoObjectRepository struct {
	client       DynamoDBAPI
	objectsTable string
	logger       *logger.Logger
}

func NewDynamoObjectRepository(client DynamoDBAPI, objectsTable string, logger *logger.Logger) ObjectRepository {
	logger.Debug().Str("objects_table", objectsTable).Msg("creating dynamodb object repository")
	return &dynamoObjectRepository{
		client:       client,
		objectsTable: objectsTable,
		logger:       logger,
	}
}

func ngcKey(ngc int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"ngc": numberAttr(ngc)}
}

func (r *dynamoObjectRepository) CreateObject(ctx context.Context, object models.CatalogObject) error {
	log := logger.FromContext(ctx)

	item, err := attributevalue.MarshalMap(object)
	if err != nil {
		return fmt.Errorf("error marshalling object: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.objectsTable),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#ngc)"),
		ExpressionAttributeNames: map[string]string{"#ngc": "ngc"},
	})
	var failed *types.ConditionalCheckFailedException
	if errors.As(err, &failed) {
		return ErrObjectAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*dynamoObjectRepository.CreateObject").Int64("ngc", object.NGC).Msg("error putting object")
		return dynamoError(err)
	}

	return nil
}

func (r *dynamoObjectRepository) FindObject(ctx context.Context, ngc int64) (models.CatalogObject, error) {
	log := logger.FromContext(ctx)

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.objectsTable),
		Key:            ngcKey(ngc),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Err(err).Str("func", "*dynamoObjectRepository.FindObject").Int64("ngc", ngc).Msg("error getting object")
		return models.CatalogObject{}, dynamoError(err)
	}
	if len(out.Item) == 0 {
		return models.CatalogObject{}, ErrObjectNotFound
	}

	var object models.CatalogObject
	if err = attributevalue.UnmarshalMap(out.Item, &object); err != nil {
		return models.CatalogObject{}, fmt.Errorf("error unmarshalling object: %w", err)
	}

	return object, nil
}

// ListObjects scans every page of the table and returns the objects ordered by NGC.
func (r *dynamoObjectRepository) ListObjects(ctx context.Context) ([]models.CatalogObject, error) {
	log := logger.FromContext(ctx)

	objects := make([]models.CatalogObject, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.objectsTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			log.Err(err).Str("func", "*dynamoObjectRepository.ListObjects").Msg("error scanning objects")
			return nil, dynamoError(err)
		}

		page := make([]models.CatalogObject, 0, len(out.Items))
		if err = attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("error unmarshalling objects: %w", err)
		}
		objects = append(objects, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortObjects(objects)

	return objects, nil
}

func (r *dynamoObjectRepository) DeleteObject(ctx context.Context, ngc int64) error {
	log := logger.FromContext(ctx)

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.objectsTable),
		Key:                      ngcKey(ngc),
		ConditionExpression:      aws.String("attribute_exists(#ngc)"),
		ExpressionAttributeNames: map[string]string{"#ngc": "ngc"},
	})
	var failed *types.ConditionalCheckFailedException
	if errors.As(err, &failed) {
		return ErrObjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*dynamoObjectRepository.DeleteObject").Int64("ngc", ngc).Msg("error deleting object")
		return dynamoError(err)
	}

	return nil
}
