package repository

import (
	"context"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesProjectIDIndex   = "project_id-index"
)

type invoiceItem struct {
	ID            string  `dynamodbav:"id"`
	ProjectID     string  `dynamodbav:"project_id"`
	TotalAmount   float64 `dynamodbav:"total_amount"`
	PozotronRate  float64 `dynamodbav:"pozotron_rate,omitempty"`
	PFHCount      float64 `dynamodbav:"pfh_count,omitempty"`
	OtherExpenses float64 `dynamodbav:"other_expenses,omitempty"`
	EstTaxRate    float64 `dynamodbav:"est_tax_rate,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// ListAll backs the pipeline summary; the invoice set is small (one operator,
// a handful of productions in flight) so a full Scan per summary request is
// the intended access pattern.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func (r *InvoiceDynamoRepository) ListAll(ctx context.Context) ([]entities.Invoice, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInvoices(out.Items)
}

func unmarshalInvoices(raw []map[string]types.AttributeValue) ([]entities.Invoice, error) {
	items := make([]entities.Invoice, 0, len(raw))
	for _, m := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		TotalAmount:   inv.TotalAmount,
		PozotronRate:  inv.PozotronRate,
		PFHCount:      inv.PFHCount,
		OtherExpenses: inv.OtherExpenses,
		EstTaxRate:    inv.EstTaxRate,
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Invoice{
		ID:            it.ID,
		ProjectID:     it.ProjectID,
		TotalAmount:   it.TotalAmount,
		PozotronRate:  it.PozotronRate,
		PFHCount:      it.PFHCount,
		OtherExpenses: it.OtherExpenses,
		EstTaxRate:    it.EstTaxRate,
		CreatedAt:     createdAt,
	}
}
