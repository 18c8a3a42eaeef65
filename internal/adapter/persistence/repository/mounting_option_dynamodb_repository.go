package repository

import (
	"context"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultMontagensTableName = "montagens"

type mountingOptionItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Descricao string `dynamodbav:"descricao,omitempty"`
	TipoBase  string `dynamodbav:"tipo_base"`
	CreatedAt string `dynamodbav:"created_at"`
	CreatedBy string `dynamodbav:"created_by"`
}

// MountingOptionDynamoRepository persists the user-defined mounting options.
//
// Table requirements:
//   - PK: id (string)
type MountingOptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMountingOptionRepository = (*MountingOptionDynamoRepository)(nil)

func NewMountingOptionDynamoRepository(ddb *dynamodb.Client, tableName string) *MountingOptionDynamoRepository {
	return &MountingOptionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultMontagensTableName),
	}
}

func (r *MountingOptionDynamoRepository) Create(ctx context.Context, o entities.MountingOption) (entities.MountingOption, error) {
	av, err := attributevalue.MarshalMap(mountingOptionItem{
		ID:        o.ID,
		Nome:      o.Nome,
		Descricao: o.Descricao,
		TipoBase:  o.TipoBase,
		CreatedAt: formatTime(o.CreatedAt),
		CreatedBy: o.CreatedBy,
	})
	if err != nil {
		return entities.MountingOption{}, err
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
		return entities.MountingOption{}, err
	}
	return o, nil
}

func (r *MountingOptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.MountingOption, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.MountingOption{}, err
	}
	if len(out.Item) == 0 {
		return entities.MountingOption{}, nil
	}
	return unmarshalMountingOption(out.Item)
}

func (r *MountingOptionDynamoRepository) List(ctx context.Context) ([]entities.MountingOption, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	out := []entities.MountingOption{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			o, err := unmarshalMountingOption(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *MountingOptionDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func unmarshalMountingOption(raw map[string]types.AttributeValue) (entities.MountingOption, error) {
	var it mountingOptionItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.MountingOption{}, err
	}
	return entities.MountingOption{
		ID:        it.ID,
		Nome:      it.Nome,
		Descricao: it.Descricao,
		TipoBase:  it.TipoBase,
		CreatedAt: parseTime(it.CreatedAt),
		CreatedBy: it.CreatedBy,
	}, nil
}
