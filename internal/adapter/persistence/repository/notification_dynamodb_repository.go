package repository

import (
	"context"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultNotificacoesTableName = "notificacoes"
	NotificationUsuarioIndex     = "usuario_id-index"
)

type notificationItem struct {
	ID             string `dynamodbav:"id"`
	UsuarioID      string `dynamodbav:"usuario_id"`
	Tipo           string `dynamodbav:"tipo"`
	Titulo         string `dynamodbav:"titulo"`
	Mensagem       string `dynamodbav:"mensagem"`
	Status         string `dynamodbav:"status,omitempty"`
	AmbienteID     string `dynamodbav:"ambiente_id,omitempty"`
	AmbienteCodigo string `dynamodbav:"ambiente_codigo,omitempty"`
	ObraID         string `dynamodbav:"obra_id,omitempty"`
	ObraNome       string `dynamodbav:"obra_nome,omitempty"`
	Link           string `dynamodbav:"link,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	ReadAt         string `dynamodbav:"read_at,omitempty"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI usuario_id-index: usuario_id (string), sort key created_at (string)
//
// An unread notification has no read_at attribute.
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultNotificacoesTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}
	return unmarshalNotification(out.Item)
}

func (r *NotificationDynamoRepository) ListByUsuario(ctx context.Context, usuarioID string, limit int) ([]entities.Notification, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, r.byUsuario(usuarioID, "", limit))

	out := []entities.Notification{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			n, err := unmarshalNotification(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
			if limit > 0 && len(out) == limit {
				return out, nil
			}
		}
	}
	return out, nil
}

func (r *NotificationDynamoRepository) CountUnread(ctx context.Context, usuarioID string) (int, error) {
	in := r.byUsuario(usuarioID, "attribute_not_exists(read_at)", 0)
	in.Select = types.SelectCount
	p := dynamodb.NewQueryPaginator(r.ddb, in)

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string, at time.Time) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #read_at = if_not_exists(#read_at, :at)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#read_at": "read_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionalCheckFailed(err); ok {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	return unmarshalNotification(out.Attributes)
}

// MarkAllRead stamps every unread notification of the user and returns how many changed.
func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, usuarioID string, at time.Time) (int, error) {
	in := r.byUsuario(usuarioID, "attribute_not_exists(read_at)", 0)
	in.ProjectionExpression = aws.String("id")
	p := dynamodb.NewQueryPaginator(r.ddb, in)

	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		for _, raw := range page.Items {
			if v, ok := raw["id"].(*types.AttributeValueMemberS); ok {
				ids = append(ids, v.Value)
			}
		}
	}

	marked := 0
	for _, id := range ids {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(id),
			ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#read_at)"),
			UpdateExpression:    aws.String("SET #read_at = :at"),
			ExpressionAttributeNames: map[string]string{
				"#id":      "id",
				"#read_at": "read_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":at": &types.AttributeValueMemberS{Value: formatTime(at)},
			},
		})
		if err != nil {
			if _, ok := conditionalCheckFailed(err); ok {
				continue
			}
			return marked, err
		}
		marked++
	}
	return marked, nil
}

// byUsuario builds a newest-first query on usuario_id-index.
func (r *NotificationDynamoRepository) byUsuario(usuarioID, filter string, limit int) *dynamodb.QueryInput {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(NotificationUsuarioIndex),
		KeyConditionExpression: aws.String("#usuario_id = :usuario_id"),
		ExpressionAttributeNames: map[string]string{
			"#usuario_id": "usuario_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":usuario_id": &types.AttributeValueMemberS{Value: usuarioID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if filter != "" {
		in.FilterExpression = aws.String(filter)
	}
	if limit > 0 && filter == "" {
		in.Limit = aws.Int32(int32(limit))
	}
	return in
}

func unmarshalNotification(raw map[string]types.AttributeValue) (entities.Notification, error) {
	var it notificationItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Notification{}, err
	}
	return entities.Notification{
		ID:             it.ID,
		UsuarioID:      it.UsuarioID,
		Tipo:           entities.NotificationType(it.Tipo),
		Titulo:         it.Titulo,
		Mensagem:       it.Mensagem,
		Status:         entities.AmbienteStatus(it.Status),
		AmbienteID:     it.AmbienteID,
		AmbienteCodigo: it.AmbienteCodigo,
		ObraID:         it.ObraID,
		ObraNome:       it.ObraNome,
		Link:           it.Link,
		CreatedAt:      parseTime(it.CreatedAt),
		ReadAt:         parseTimePtr(it.ReadAt),
	}, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:             n.ID,
		UsuarioID:      n.UsuarioID,
		Tipo:           string(n.Tipo),
		Titulo:         n.Titulo,
		Mensagem:       n.Mensagem,
		Status:         string(n.Status),
		AmbienteID:     n.AmbienteID,
		AmbienteCodigo: n.AmbienteCodigo,
		ObraID:         n.ObraID,
		ObraNome:       n.ObraNome,
		Link:           n.Link,
		CreatedAt:      formatTime(n.CreatedAt),
		ReadAt:         formatTimePtr(n.ReadAt),
	}
}
