package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	ordersShopIDIndex = "shop_id-index"
	ordersStatusIndex = "status-index"
)

type orderAddressItem struct {
	Street string `dynamodbav:"street"`
	City   string `dynamodbav:"city"`
	State  string `dynamodbav:"state"`
	Zip    string `dynamodbav:"zip"`
	Phone  string `dynamodbav:"phone,omitempty"`
}

type orderLineItem struct {
	ProductID string  `dynamodbav:"product_id,omitempty"`
	Name      string  `dynamodbav:"name"`
	SKU       string  `dynamodbav:"sku,omitempty"`
	Price     float64 `dynamodbav:"price"`
	Quantity  int     `dynamodbav:"quantity"`
}

type orderItem struct {
	ID                string           `dynamodbav:"id"`
	ShopID            string           `dynamodbav:"shop_id"`
	Status            string           `dynamodbav:"status"`
	PaymentStatus     string           `dynamodbav:"payment_status"`
	PaymentMethod     string           `dynamodbav:"payment_method,omitempty"`
	ProviderPaymentID string           `dynamodbav:"provider_payment_id,omitempty"`
	CustomerName      string           `dynamodbav:"customer_name"`
	CustomerPhone     string           `dynamodbav:"customer_phone,omitempty"`
	CustomerEmail     string           `dynamodbav:"customer_email,omitempty"`
	DeliveryAddress   orderAddressItem `dynamodbav:"delivery_address"`
	Items             []orderLineItem  `dynamodbav:"items"`
	TotalAmount       float64          `dynamodbav:"total_amount"`
	CreatedAt         string           `dynamodbav:"created_at"`
	ProcessingAt      string           `dynamodbav:"processing_at,omitempty"`
	ShippedAt         string           `dynamodbav:"shipped_at,omitempty"`
	DeliveredAt       string           `dynamodbav:"delivered_at,omitempty"`
	CanceledAt        string           `dynamodbav:"canceled_at,omitempty"`
	CashReceivedAt    string           `dynamodbav:"cash_received_at,omitempty"`
	PaidAt            string           `dynamodbav:"paid_at,omitempty"`
}

// OrderDynamoRepository persists Order documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: shop_id-index (PK: shop_id)
//   - GSI: status-index (PK: status)
//
// All writes are partial UpdateItem calls behind condition expressions; the
// placement flow owns item creation, this service never puts whole orders.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("get order: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByShop(ctx context.Context, shopID string, statuses []entities.OrderStatus) ([]entities.Order, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersShopIDIndex),
		KeyConditionExpression: aws.String("shop_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: shopID},
		},
	}

	if len(statuses) > 0 {
		// `#status IN (:s0, :s1, ...)`, the multi-status history filter.
		placeholders := make([]string, 0, len(statuses))
		for i, s := range statuses {
			ph := ":s" + strconv.Itoa(i)
			placeholders = append(placeholders, ph)
			input.ExpressionAttributeValues[ph] = &types.AttributeValueMemberS{Value: string(s)}
		}
		input.FilterExpression = aws.String("#status IN (" + strings.Join(placeholders, ", ") + ")")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
	}

	return r.queryOrders(ctx, input)
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	return r.queryOrders(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
}

func (r *OrderDynamoRepository) queryOrders(ctx context.Context, input *dynamodb.QueryInput) ([]entities.Order, error) {
	var orders []entities.Order
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query orders: %w", err)
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

// PatchStatus applies one lifecycle edge. The condition pins the stored
// status to `from` and requires the entry timestamp to be unset, so a lost
// race or a replayed call surfaces as a zero-value return instead of a
// second stamp.
func (r *OrderDynamoRepository) PatchStatus(ctx context.Context, id string, from, to entities.OrderStatus, stampAttr string, at time.Time) (entities.Order, error) {
	expr := "SET #status = :to"
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}
	cond := "attribute_exists(#id) AND #status = :from"

	if stampAttr != "" {
		expr += ", #stamp = :stamp_at"
		names["#stamp"] = stampAttr
		values[":stamp_at"] = &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)}
		cond += " AND attribute_not_exists(#stamp)"
	}

	return r.update(ctx, id, expr, cond, names, values)
}

func (r *OrderDynamoRepository) PatchPayment(ctx context.Context, id string, method entities.PaymentMethod, at time.Time) (entities.Order, error) {
	stamp := at.UTC().Format(time.RFC3339Nano)

	expr := "SET #payment_status = :paid, #paid_at = :at"
	names := map[string]string{
		"#id":             "id",
		"#payment_status": "payment_status",
		"#paid_at":        "paid_at",
	}
	values := map[string]types.AttributeValue{
		":paid":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
		":unpaid": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusUnpaid)},
		":at":     &types.AttributeValueMemberS{Value: stamp},
	}
	if method != entities.PaymentMethodOnline {
		expr += ", #cash_received_at = :at"
		names["#cash_received_at"] = "cash_received_at"
	}
	cond := "attribute_exists(#id) AND #payment_status = :unpaid"

	return r.update(ctx, id, expr, cond, names, values)
}

func (r *OrderDynamoRepository) update(ctx context.Context, id, updateExpr, condExpr string, names map[string]string, values map[string]types.AttributeValue) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String(condExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, fmt.Errorf("update order: %w", err)
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			SKU:       li.SKU,
			Price:     li.Price,
			Quantity:  li.Quantity,
		})
	}

	paymentStatus := entities.PaymentStatus(it.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = entities.PaymentStatusUnpaid
	}
	method := entities.PaymentMethod(it.PaymentMethod)
	if method == "" {
		method = entities.PaymentMethodCash
	}

	return entities.Order{
		ID:                it.ID,
		ShopID:            it.ShopID,
		Status:            entities.OrderStatus(it.Status),
		PaymentStatus:     paymentStatus,
		PaymentMethod:     method,
		ProviderPaymentID: it.ProviderPaymentID,
		CustomerName:      it.CustomerName,
		CustomerPhone:     it.CustomerPhone,
		CustomerEmail:     it.CustomerEmail,
		DeliveryAddress: entities.Address{
			Street: it.DeliveryAddress.Street,
			City:   it.DeliveryAddress.City,
			State:  it.DeliveryAddress.State,
			Zip:    it.DeliveryAddress.Zip,
			Phone:  it.DeliveryAddress.Phone,
		},
		Items:          items,
		TotalAmount:    it.TotalAmount,
		CreatedAt:      parseStamp(it.CreatedAt),
		ProcessingAt:   parseStampPtr(it.ProcessingAt),
		ShippedAt:      parseStampPtr(it.ShippedAt),
		DeliveredAt:    parseStampPtr(it.DeliveredAt),
		CanceledAt:     parseStampPtr(it.CanceledAt),
		CashReceivedAt: parseStampPtr(it.CashReceivedAt),
		PaidAt:         parseStampPtr(it.PaidAt),
	}
}

func parseStamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseStampPtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
