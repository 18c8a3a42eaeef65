package repository

import (
	"context"
	"fmt"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultUsuariosTableName = "usuarios"
	UserRoleIndex            = "role-index"

	// BatchGetItem accepts at most 100 keys per call.
	batchGetMaxKeys     = 100
	batchGetMaxAttempts = 5
)

type userItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Email     string `dynamodbav:"email"`
	Role      string `dynamodbav:"role"`
	Ativo     bool   `dynamodbav:"ativo"`
	CreatedAt string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI role-index: role (string)
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultUsuariosTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	return unmarshalUser(out.Item)
}

// GetByIDs loads the users with the given ids. Unknown ids are skipped.
func (r *UserDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	out := []entities.User{}
	for _, chunk := range chunkIDs(ids, batchGetMaxKeys) {
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, idKey(id))
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		}
		for attempt := 0; len(request) > 0; attempt++ {
			if attempt == batchGetMaxAttempts {
				return nil, fmt.Errorf("batch get users: unprocessed keys after %d attempts", attempt)
			}
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range res.Responses[r.tableName] {
				u, err := unmarshalUser(raw)
				if err != nil {
					return nil, err
				}
				out = append(out, u)
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	out := []entities.User{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			u, err := unmarshalUser(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, u)
		}
	}
	return out, nil
}

// ListByRoles queries role-index once per role.
func (r *UserDynamoRepository) ListByRoles(ctx context.Context, roles []entities.Role) ([]entities.User, error) {
	out := []entities.User{}
	for _, role := range roles {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(UserRoleIndex),
			KeyConditionExpression: aws.String("#role = :role"),
			ExpressionAttributeNames: map[string]string{
				"#role": "role",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":role": &types.AttributeValueMemberS{Value: string(role)},
			},
		})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, raw := range page.Items {
				u, err := unmarshalUser(raw)
				if err != nil {
					return nil, err
				}
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (r *UserDynamoRepository) SetAtivo(ctx context.Context, id string, ativo bool) (entities.User, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #ativo = :ativo"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#ativo": "ativo",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ativo": &types.AttributeValueMemberBOOL{Value: ativo},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionalCheckFailed(err); ok {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	return unmarshalUser(out.Attributes)
}

func unmarshalUser(raw map[string]types.AttributeValue) (entities.User, error) {
	var it userItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:        it.ID,
		Nome:      it.Nome,
		Email:     it.Email,
		Role:      entities.Role(it.Role),
		Ativo:     it.Ativo,
		CreatedAt: parseTime(it.CreatedAt),
	}, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Role:      string(u.Role),
		Ativo:     u.Ativo,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

// chunkIDs splits ids into groups of at most size, dropping duplicates.
func chunkIDs(ids []string, size int) [][]string {
	seen := make(map[string]struct{}, len(ids))
	var chunks [][]string
	var current []string
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == "" {
			continue
		}
		seen[id] = struct{}{}
		current = append(current, id)
		if len(current) == size {
			chunks = append(chunks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
