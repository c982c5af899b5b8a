package repository

import (
	"context"
	"errors"
	"time"

	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCreditorsTableName = "creditors"

type creditorItem struct {
	Name          string `dynamodbav:"name"`
	ReissueMargin int    `dynamodbav:"reissue_margin"`
	Deleted       bool   `dynamodbav:"deleted"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// CreditorDynamoRepository persists Creditor entities in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//
// Deletes are logical: the item stays addressable so agreements referencing
// the creditor name keep resolving.
type CreditorDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditorRepository = (*CreditorDynamoRepository)(nil)

func NewCreditorDynamoRepository(ddb *dynamodb.Client) *CreditorDynamoRepository {
	return &CreditorDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDITORS_TABLE", defaultCreditorsTableName),
	}
}

func (r *CreditorDynamoRepository) Create(ctx context.Context, c entities.Creditor) (entities.Creditor, error) {
	av, err := attributevalue.MarshalMap(toCreditorItem(c))
	if err != nil {
		return entities.Creditor{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "name",
		},
	})
	if err != nil {
		return entities.Creditor{}, err
	}
	return c, nil
}

func (r *CreditorDynamoRepository) GetByName(ctx context.Context, name string) (entities.Creditor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Creditor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Creditor{}, nil
	}

	var it creditorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Creditor{}, err
	}
	return fromCreditorItem(it), nil
}

func (r *CreditorDynamoRepository) List(ctx context.Context) ([]entities.Creditor, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	var items []creditorItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	creditors := make([]entities.Creditor, 0, len(items))
	for _, it := range items {
		creditors = append(creditors, fromCreditorItem(it))
	}
	return creditors, nil
}

func (r *CreditorDynamoRepository) UpdateReissueMargin(ctx context.Context, name string, margin int) (entities.Creditor, error) {
	return r.update(ctx, name, "SET #reissue_margin = :reissue_margin, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":reissue_margin": &types.AttributeValueMemberN{Value: intToString(margin)},
			":updated_at":     &types.AttributeValueMemberS{Value: fmtTimestamp(time.Now())},
		},
		map[string]string{
			"#reissue_margin": "reissue_margin",
			"#updated_at":     "updated_at",
		})
}

func (r *CreditorDynamoRepository) SoftDelete(ctx context.Context, name string) (entities.Creditor, error) {
	return r.update(ctx, name, "SET #deleted = :deleted, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":deleted":    &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: fmtTimestamp(time.Now())},
		},
		map[string]string{
			"#deleted":    "deleted",
			"#updated_at": "updated_at",
		})
}

func (r *CreditorDynamoRepository) update(ctx context.Context, name, expr string, values map[string]types.AttributeValue, names map[string]string) (entities.Creditor, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#pk": "name"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Creditor{}, nil
		}
		return entities.Creditor{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Creditor{}, nil
	}

	var it creditorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Creditor{}, err
	}
	return fromCreditorItem(it), nil
}

func toCreditorItem(c entities.Creditor) creditorItem {
	return creditorItem{
		Name:          c.Name,
		ReissueMargin: c.ReissueMargin,
		Deleted:       c.Deleted,
		CreatedAt:     fmtTimestamp(c.CreatedAt),
		UpdatedAt:     fmtTimestamp(c.UpdatedAt),
	}
}

func fromCreditorItem(it creditorItem) entities.Creditor {
	return entities.Creditor{
		Name:          it.Name,
		ReissueMargin: it.ReissueMargin,
		Deleted:       it.Deleted,
		CreatedAt:     parseTimestamp(it.CreatedAt),
		UpdatedAt:     parseTimestamp(it.UpdatedAt),
	}
}
