package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type shopAddressItem struct {
	Street string `dynamodbav:"street"`
	City   string `dynamodbav:"city"`
	State  string `dynamodbav:"state"`
	Zip    string `dynamodbav:"zip"`
	Phone  string `dynamodbav:"phone,omitempty"`
}

type shopItem struct {
	ID          string          `dynamodbav:"id"`
	ShopName    string          `dynamodbav:"shop_name"`
	OwnerName   string          `dynamodbav:"owner_name"`
	Email       string          `dynamodbav:"email"`
	Phone       string          `dynamodbav:"phone,omitempty"`
	Address     shopAddressItem `dynamodbav:"address"`
	Description string          `dynamodbav:"description,omitempty"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
}

// ShopDynamoRepository persists Shop profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Rows are created at signup by the auth collaborator; this repository only
// reads and partially updates the editable fields.

type ShopDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShopRepository = (*ShopDynamoRepository)(nil)

func NewShopDynamoRepository(ddb *dynamodb.Client, tableName string) *ShopDynamoRepository {
	return &ShopDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ShopDynamoRepository) GetByID(ctx context.Context, id string) (entities.Shop, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Shop{}, fmt.Errorf("get shop: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Shop{}, nil
	}

	var it shopItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shop{}, err
	}
	return fromShopItem(it), nil
}

func (r *ShopDynamoRepository) UpdateProfile(ctx context.Context, s entities.Shop) (entities.Shop, error) {
	addr, err := attributevalue.Marshal(shopAddressItem{
		Street: s.Address.Street,
		City:   s.Address.City,
		State:  s.Address.State,
		Zip:    s.Address.Zip,
		Phone:  s.Address.Phone,
	})
	if err != nil {
		return entities.Shop{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.ID},
		},
		UpdateExpression:    aws.String("SET #shop_name = :shop_name, #owner_name = :owner_name, #phone = :phone, #address = :address, #description = :description, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#shop_name":   "shop_name",
			"#owner_name":  "owner_name",
			"#phone":       "phone",
			"#address":     "address",
			"#description": "description",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":shop_name":   &types.AttributeValueMemberS{Value: s.ShopName},
			":owner_name":  &types.AttributeValueMemberS{Value: s.OwnerName},
			":phone":       &types.AttributeValueMemberS{Value: s.Phone},
			":address":     addr,
			":description": &types.AttributeValueMemberS{Value: s.Description},
			":updated_at":  &types.AttributeValueMemberS{Value: s.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Shop{}, nil
		}
		return entities.Shop{}, fmt.Errorf("update shop: %w", err)
	}

	var it shopItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Shop{}, err
	}
	return fromShopItem(it), nil
}

func fromShopItem(it shopItem) entities.Shop {
	return entities.Shop{
		ID:        it.ID,
		ShopName:  it.ShopName,
		OwnerName: it.OwnerName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address: entities.Address{
			Street: it.Address.Street,
			City:   it.Address.City,
			State:  it.Address.State,
			Zip:    it.Address.Zip,
			Phone:  it.Address.Phone,
		},
		Description: it.Description,
		CreatedAt:   parseStamp(it.CreatedAt),
		UpdatedAt:   parseStamp(it.UpdatedAt),
	}
}
