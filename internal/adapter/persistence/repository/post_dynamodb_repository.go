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
	defaultPostsTableName = "posts"
	postsSlugIndex        = "slug-index"
)

type postItem struct {
	ID        string   `dynamodbav:"id"`
	Slug      string   `dynamodbav:"slug"`
	Title     string   `dynamodbav:"title"`
	Body      string   `dynamodbav:"body"`
	Excerpt   string   `dynamodbav:"excerpt,omitempty"`
	Tags      []string `dynamodbav:"tags,omitempty"`
	Published bool     `dynamodbav:"published"`
	ViewCount int64    `dynamodbav:"view_count"`
	CreatedAt string   `dynamodbav:"created_at"`
	UpdatedAt string   `dynamodbav:"updated_at"`
}

// PostDynamoRepository persists Post entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)
//
// IncrementViews uses an ADD update expression so concurrent readers never
// lose counts; the rest of the row is untouched by it.

type PostDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPostRepository = (*PostDynamoRepository)(nil)

func NewPostDynamoRepository(ddb *dynamodb.Client) *PostDynamoRepository {
	return &PostDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POSTS_TABLE", defaultPostsTableName),
	}
}

func (r *PostDynamoRepository) Create(ctx context.Context, p entities.Post) (entities.Post, error) {
	it := toPostItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Post{}, err
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
		return entities.Post{}, err
	}
	return p, nil
}

func (r *PostDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Post, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(postsSlugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Post{}, err
	}
	if len(out.Items) == 0 {
		return entities.Post{}, nil
	}

	var it postItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Post{}, err
	}
	return fromPostItem(it), nil
}

func (r *PostDynamoRepository) List(ctx context.Context, publishedOnly bool) ([]entities.Post, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if publishedOnly {
		in.FilterExpression = aws.String("#published = :published")
		in.ExpressionAttributeNames = map[string]string{"#published": "published"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":published": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Post, 0, len(out.Items))
	for _, m := range out.Items {
		var it postItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPostItem(it))
	}
	return items, nil
}

func (r *PostDynamoRepository) Update(ctx context.Context, p entities.Post) (entities.Post, error) {
	it := toPostItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Post{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Post{}, err
	}
	return p, nil
}

func (r *PostDynamoRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #view_count :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#view_count": "view_count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	})
	return err
}

func toPostItem(p entities.Post) postItem {
	return postItem{
		ID:        p.ID,
		Slug:      p.Slug,
		Title:     p.Title,
		Body:      p.Body,
		Excerpt:   p.Excerpt,
		Tags:      p.Tags,
		Published: p.Published,
		ViewCount: p.ViewCount,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPostItem(it postItem) entities.Post {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Post{
		ID:        it.ID,
		Slug:      it.Slug,
		Title:     it.Title,
		Body:      it.Body,
		Excerpt:   it.Excerpt,
		Tags:      it.Tags,
		Published: it.Published,
		ViewCount: it.ViewCount,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
