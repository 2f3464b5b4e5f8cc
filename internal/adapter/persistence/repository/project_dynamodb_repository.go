package repository

import (
	"context"
	"errors"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/pipeline"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	projectsStatusIndex      = "status-index"
)

type projectItem struct {
	ID               string `dynamodbav:"id"`
	Status           string `dynamodbav:"status"`
	ClientType       string `dynamodbav:"client_type"`
	ProductionStatus string `dynamodbav:"production_status,omitempty"`
	RosterProducer   string `dynamodbav:"roster_producer,omitempty"`
	BookTitle        string `dynamodbav:"book_title"`
	ClientName       string `dynamodbav:"client_name"`
	Email            string `dynamodbav:"email,omitempty"`
	WordCount        int    `dynamodbav:"word_count,omitempty"`
	DaysNeeded       int    `dynamodbav:"days_needed,omitempty"`
	NarrationStyle   string `dynamodbav:"narration_style,omitempty"`
	DiscountApplied  bool   `dynamodbav:"discount_applied,omitempty"`
	Notes            string `dynamodbav:"notes,omitempty"`
	StartDate        string `dynamodbav:"start_date"`
	EndDate          string `dynamodbav:"end_date"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Transition writes go through a single UpdateItem with an attribute_exists
// condition; a missing row comes back as a zero Project for the usecase to
// map to not-found.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListAll(ctx context.Context) ([]entities.Project, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProjects(out.Items)
}

func (r *ProjectDynamoRepository) ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProjects(out.Items)
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) UpdateBooking(ctx context.Context, id string, booking pipeline.Booking) (entities.Project, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #client_type = :client_type, #production_status = :production_status, #roster_producer = :roster_producer, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":            &types.AttributeValueMemberS{Value: string(booking.Status)},
			":client_type":       &types.AttributeValueMemberS{Value: string(booking.ClientType)},
			":production_status": &types.AttributeValueMemberS{Value: booking.ProductionStatus},
			":roster_producer":   &types.AttributeValueMemberS{Value: booking.RosterProducer},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":            "status",
			"#client_type":       "client_type",
			"#production_status": "production_status",
			"#roster_producer":   "roster_producer",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Project, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func unmarshalProjects(raw []map[string]types.AttributeValue) ([]entities.Project, error) {
	items := make([]entities.Project, 0, len(raw))
	for _, m := range raw {
		var it projectItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProjectItem(it))
	}
	return items, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:               p.ID,
		Status:           string(p.Status),
		ClientType:       string(p.ClientType),
		ProductionStatus: p.ProductionStatus,
		RosterProducer:   p.RosterProducer,
		BookTitle:        p.BookTitle,
		ClientName:       p.ClientName,
		Email:            p.Email,
		WordCount:        p.WordCount,
		DaysNeeded:       p.DaysNeeded,
		NarrationStyle:   p.NarrationStyle,
		DiscountApplied:  p.DiscountApplied,
		Notes:            p.Notes,
		StartDate:        p.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:          p.EndDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Project{
		ID:               it.ID,
		Status:           entities.ProjectStatus(it.Status),
		ClientType:       entities.ClientType(it.ClientType),
		ProductionStatus: it.ProductionStatus,
		RosterProducer:   it.RosterProducer,
		BookTitle:        it.BookTitle,
		ClientName:       it.ClientName,
		Email:            it.Email,
		WordCount:        it.WordCount,
		DaysNeeded:       it.DaysNeeded,
		NarrationStyle:   it.NarrationStyle,
		DiscountApplied:  it.DiscountApplied,
		Notes:            it.Notes,
		StartDate:        startDate,
		EndDate:          endDate,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
