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

const DefaultObrasTableName = "obras"

type obraItem struct {
	ID           string   `dynamodbav:"id"`
	Nome         string   `dynamodbav:"nome"`
	Cliente      string   `dynamodbav:"cliente,omitempty"`
	Endereco     string   `dynamodbav:"endereco,omitempty"`
	Responsaveis []string `dynamodbav:"responsaveis"`
	CreatedAt    string   `dynamodbav:"created_at"`
	CreatedBy    string   `dynamodbav:"created_by"`
}

// ObraDynamoRepository persists Obra entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ObraDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IObraRepository = (*ObraDynamoRepository)(nil)

func NewObraDynamoRepository(ddb *dynamodb.Client, tableName string) *ObraDynamoRepository {
	return &ObraDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultObrasTableName),
	}
}

func (r *ObraDynamoRepository) Create(ctx context.Context, o entities.Obra) (entities.Obra, error) {
	av, err := attributevalue.MarshalMap(toObraItem(o))
	if err != nil {
		return entities.Obra{}, err
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
		return entities.Obra{}, err
	}
	return o, nil
}

func (r *ObraDynamoRepository) GetByID(ctx context.Context, id string) (entities.Obra, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Obra{}, err
	}
	if len(out.Item) == 0 {
		return entities.Obra{}, nil
	}
	return unmarshalObra(out.Item)
}

func (r *ObraDynamoRepository) List(ctx context.Context) ([]entities.Obra, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	out := []entities.Obra{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			o, err := unmarshalObra(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *ObraDynamoRepository) SetResponsaveis(ctx context.Context, id string, responsaveis []string) (entities.Obra, error) {
	list, err := attributevalue.Marshal(nonNil(responsaveis))
	if err != nil {
		return entities.Obra{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #responsaveis = :responsaveis"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#responsaveis": "responsaveis",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":responsaveis": list,
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionalCheckFailed(err); ok {
			return entities.Obra{}, nil
		}
		return entities.Obra{}, err
	}
	return unmarshalObra(out.Attributes)
}

func unmarshalObra(raw map[string]types.AttributeValue) (entities.Obra, error) {
	var it obraItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Obra{}, err
	}
	return entities.Obra{
		ID:           it.ID,
		Nome:         it.Nome,
		Cliente:      it.Cliente,
		Endereco:     it.Endereco,
		Responsaveis: nonNil(it.Responsaveis),
		CreatedAt:    parseTime(it.CreatedAt),
		CreatedBy:    it.CreatedBy,
	}, nil
}

func toObraItem(o entities.Obra) obraItem {
	return obraItem{
		ID:           o.ID,
		Nome:         o.Nome,
		Cliente:      o.Cliente,
		Endereco:     o.Endereco,
		Responsaveis: nonNil(o.Responsaveis),
		CreatedAt:    formatTime(o.CreatedAt),
		CreatedBy:    o.CreatedBy,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
