package dal

import (
	"context"
	"errors"
	"fmt"

	"orgsub-backend/models"
	"orgsub-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const snapshotKey = "snapshot"

// snapshotItem is the single DynamoDB item holding the whole dataset.
// Storing both collections in one item with a revision attribute gives the
// same one-logical-write semantics as the file document.
type snapshotItem struct {
	ID            string                        `dynamodbav:"id"`
	Organizations []*models.Organization        `dynamodbav:"organizations"`
	Requests      []*models.SubscriptionRequest `dynamodbav:"requests"`
	Revision      int64                         `dynamodbav:"revision"`
}

// DynamoStore persists the dataset snapshot in a DynamoDB table.
type DynamoStore struct {
	client *dynamodb.Client
	config *models.Config
	logger logger.Logger
}

// NewDynamoStore creates a new DynamoDB-backed dataset store
func NewDynamoStore(cfg *models.Config, log logger.Logger) (*DynamoStore, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Override endpoint for local DynamoDB
	if cfg.DynamoDBEndpoint != "" {
		awsCfg.EndpointResolver = aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:           cfg.DynamoDBEndpoint,
				SigningRegion: cfg.AWSRegion,
			}, nil
		})
	}

	// Use static credentials if provided
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"", // session token
		))
	}

	store := &DynamoStore{
		client: dynamodb.NewFromConfig(awsCfg),
		config: cfg,
		logger: log,
	}

	log.Info("DynamoDB dataset store initialized")
	return store, nil
}

func (s *DynamoStore) tableName() string {
	return s.config.DynamoDBTablePrefix + "_dataset"
}

// Load fetches the snapshot item with a consistent read. A missing item is
// the first-run case and yields an empty dataset.
func (s *DynamoStore) Load(ctx context.Context) (*models.Dataset, error) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName()),
		ConsistentRead: aws.Bool(true),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: snapshotKey},
		},
	}

	output, err := s.client.GetItem(ctx, input)
	if err != nil {
		s.logger.Errorf("Failed to load dataset snapshot: %v", err)
		return nil, models.NewStorageError("failed to load dataset snapshot", err)
	}

	if output.Item == nil {
		s.logger.Debug("No dataset snapshot found, starting with empty dataset")
		return models.NewDataset(), nil
	}

	var item snapshotItem
	if err := attributevalue.UnmarshalMap(output.Item, &item); err != nil {
		return nil, models.NewStorageError("failed to unmarshal dataset snapshot", err)
	}

	ds := &models.Dataset{
		Organizations: item.Organizations,
		Requests:      item.Requests,
		Revision:      item.Revision,
	}
	if ds.Organizations == nil {
		ds.Organizations = []*models.Organization{}
	}
	if ds.Requests == nil {
		ds.Requests = []*models.SubscriptionRequest{}
	}
	return ds, nil
}

// Save writes the snapshot item conditionally on the revision the caller
// loaded. A concurrent writer bumps the revision first and this write
// fails with a ConflictError instead of silently losing its update.
func (s *DynamoStore) Save(ctx context.Context, dataset *models.Dataset) error {
	item := snapshotItem{
		ID:            snapshotKey,
		Organizations: dataset.Organizations,
		Requests:      dataset.Requests,
		Revision:      dataset.Revision + 1,
	}
	if item.Organizations == nil {
		item.Organizations = []*models.Organization{}
	}
	if item.Requests == nil {
		item.Requests = []*models.SubscriptionRequest{}
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return models.NewStorageError("failed to marshal dataset snapshot", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName()),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id) OR revision = :prev"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prev": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", dataset.Revision)},
		},
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return models.NewConflictError("dataset was modified by a concurrent write, reload and retry")
		}
		s.logger.Errorf("Failed to save dataset snapshot: %v", err)
		return models.NewStorageError("failed to save dataset snapshot", err)
	}

	dataset.Revision = item.Revision
	s.logger.Debugf("Dataset snapshot saved (revision %d)", item.Revision)
	return nil
}
