package repository

import (
	"context"
	"strconv"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultAmbientesTableName = "ambientes"
	AmbienteObraIndex         = "obra_id-index"
	AmbienteStatusIndex       = "status-index"
)

type medidasItem struct {
	Largura        *float64 `dynamodbav:"largura,omitempty"`
	Altura         *float64 `dynamodbav:"altura,omitempty"`
	Recuo          *float64 `dynamodbav:"recuo,omitempty"`
	TipoInstalacao string   `dynamodbav:"tipo_instalacao,omitempty"`
}

type regrasItem struct {
	DescontoTrilho   *float64 `dynamodbav:"desconto_trilho,omitempty"`
	DescontoBlackout *float64 `dynamodbav:"desconto_blackout,omitempty"`
	DescontoVoil     *float64 `dynamodbav:"desconto_voil,omitempty"`
	AlturaInstalacao *float64 `dynamodbav:"altura_instalacao,omitempty"`
}

type variaveisItem struct {
	Trilho           string     `dynamodbav:"trilho,omitempty"`
	TipoMontagem     string     `dynamodbav:"tipo_montagem,omitempty"`
	TecidoPrincipal  string     `dynamodbav:"tecido_principal,omitempty"`
	TecidoSecundario string     `dynamodbav:"tecido_secundario,omitempty"`
	Regras           regrasItem `dynamodbav:"regras"`
}

type calculadoItem struct {
	LarguraTrilho  *float64 `dynamodbav:"largura_trilho,omitempty"`
	AlturaBlackout *float64 `dynamodbav:"altura_blackout,omitempty"`
	AlturaVoil     *float64 `dynamodbav:"altura_voil,omitempty"`
}

type responsaveisItem struct {
	ProducaoCortina    string `dynamodbav:"producao_cortina,omitempty"`
	ProducaoCalha      string `dynamodbav:"producao_calha,omitempty"`
	Instalador         string `dynamodbav:"instalador,omitempty"`
	RecebimentoEstoque string `dynamodbav:"recebimento_estoque,omitempty"`
	SeparacaoExpedicao string `dynamodbav:"separacao_expedicao,omitempty"`
}

type ambienteLogItem struct {
	Status      string `dynamodbav:"status"`
	Observacao  string `dynamodbav:"observacao,omitempty"`
	Timestamp   string `dynamodbav:"timestamp"`
	UsuarioID   string `dynamodbav:"usuario_id"`
	UsuarioNome string `dynamodbav:"usuario_nome,omitempty"`
}

type ambienteItem struct {
	ID           string            `dynamodbav:"id"`
	ObraID       string            `dynamodbav:"obra_id"`
	Codigo       string            `dynamodbav:"codigo"`
	Prefixo      string            `dynamodbav:"prefixo"`
	Sala         string            `dynamodbav:"sala"`
	Sequencia    int               `dynamodbav:"sequencia"`
	Medidas      medidasItem       `dynamodbav:"medidas"`
	Variaveis    variaveisItem     `dynamodbav:"variaveis"`
	Calculado    calculadoItem     `dynamodbav:"calculado"`
	Status       string            `dynamodbav:"status"`
	Workflow     map[string]string `dynamodbav:"workflow,omitempty"`
	Logs         []ambienteLogItem `dynamodbav:"logs"`
	Responsaveis responsaveisItem  `dynamodbav:"responsaveis"`
	CreatedBy    string            `dynamodbav:"created_by"`
	UpdatedBy    string            `dynamodbav:"updated_by"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
	Version      int64             `dynamodbav:"version"`
}

// workflowFields maps the stored workflow keys to the entity fields.
var workflowFields = []struct {
	key   string
	field func(w *entities.Workflow) **time.Time
}{
	{"validado_em", func(w *entities.Workflow) **time.Time { return &w.ValidadoEm }},
	{"inicio_producao_calha", func(w *entities.Workflow) **time.Time { return &w.InicioProducaoCalha }},
	{"fim_producao_calha", func(w *entities.Workflow) **time.Time { return &w.FimProducaoCalha }},
	{"inicio_producao_cortina", func(w *entities.Workflow) **time.Time { return &w.InicioProducaoCortina }},
	{"fim_producao_cortina", func(w *entities.Workflow) **time.Time { return &w.FimProducaoCortina }},
	{"entrada_estoque", func(w *entities.Workflow) **time.Time { return &w.EntradaEstoque }},
	{"saida_estoque", func(w *entities.Workflow) **time.Time { return &w.SaidaEstoque }},
	{"saida_expedicao", func(w *entities.Workflow) **time.Time { return &w.SaidaExpedicao }},
	{"inicio_instalacao", func(w *entities.Workflow) **time.Time { return &w.InicioInstalacao }},
	{"fim_instalacao", func(w *entities.Workflow) **time.Time { return &w.FimInstalacao }},
}

// AmbienteDynamoRepository persists Ambiente entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI obra_id-index: obra_id (string)
//   - GSI status-index: status (string)
//
// Saves replace the whole item and are conditioned on the version that was read.
type AmbienteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAmbienteRepository = (*AmbienteDynamoRepository)(nil)

func NewAmbienteDynamoRepository(ddb *dynamodb.Client, tableName string) *AmbienteDynamoRepository {
	return &AmbienteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultAmbientesTableName),
	}
}

func (r *AmbienteDynamoRepository) Create(ctx context.Context, a entities.Ambiente) (entities.Ambiente, error) {
	av, err := attributevalue.MarshalMap(toAmbienteItem(a))
	if err != nil {
		return entities.Ambiente{}, err
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
		return entities.Ambiente{}, err
	}
	return a, nil
}

func (r *AmbienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ambiente, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ambiente{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ambiente{}, nil
	}
	return unmarshalAmbiente(out.Item)
}

func (r *AmbienteDynamoRepository) ListByObra(ctx context.Context, obraID string) ([]entities.Ambiente, error) {
	return r.queryIndex(ctx, AmbienteObraIndex, "obra_id", obraID)
}

func (r *AmbienteDynamoRepository) ListByStatus(ctx context.Context, status entities.AmbienteStatus) ([]entities.Ambiente, error) {
	return r.queryIndex(ctx, AmbienteStatusIndex, "status", string(status))
}

func (r *AmbienteDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Ambiente, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	out := []entities.Ambiente{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			a, err := unmarshalAmbiente(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AmbienteDynamoRepository) Update(ctx context.Context, a entities.Ambiente, expectedVersion int64) (entities.Ambiente, error) {
	av, err := attributevalue.MarshalMap(toAmbienteItem(a))
	if err != nil {
		return entities.Ambiente{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionalCheckFailed(err); ok {
			if len(cfe.Item) == 0 {
				return entities.Ambiente{}, nil
			}
			return entities.Ambiente{}, interfaces.ErrVersionConflict
		}
		return entities.Ambiente{}, err
	}
	return a, nil
}

func (r *AmbienteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func unmarshalAmbiente(raw map[string]types.AttributeValue) (entities.Ambiente, error) {
	var it ambienteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Ambiente{}, err
	}
	return fromAmbienteItem(it), nil
}

func toAmbienteItem(a entities.Ambiente) ambienteItem {
	it := ambienteItem{
		ID:        a.ID,
		ObraID:    a.ObraID,
		Codigo:    a.Codigo,
		Prefixo:   a.Prefixo,
		Sala:      a.Sala,
		Sequencia: a.Sequencia,
		Medidas: medidasItem{
			Largura:        a.Medidas.Largura,
			Altura:         a.Medidas.Altura,
			Recuo:          a.Medidas.Recuo,
			TipoInstalacao: string(a.Medidas.TipoInstalacao),
		},
		Variaveis: variaveisItem{
			Trilho:           a.Variaveis.Trilho,
			TipoMontagem:     a.Variaveis.TipoMontagem,
			TecidoPrincipal:  a.Variaveis.TecidoPrincipal,
			TecidoSecundario: a.Variaveis.TecidoSecundario,
			Regras: regrasItem{
				DescontoTrilho:   a.Variaveis.Regras.DescontoTrilho,
				DescontoBlackout: a.Variaveis.Regras.DescontoBlackout,
				DescontoVoil:     a.Variaveis.Regras.DescontoVoil,
				AlturaInstalacao: a.Variaveis.Regras.AlturaInstalacao,
			},
		},
		Calculado: calculadoItem{
			LarguraTrilho:  a.Calculado.LarguraTrilho,
			AlturaBlackout: a.Calculado.AlturaBlackout,
			AlturaVoil:     a.Calculado.AlturaVoil,
		},
		Status: string(a.Status.OrDefault()),
		Logs:   make([]ambienteLogItem, 0, len(a.Logs)),
		Responsaveis: responsaveisItem{
			ProducaoCortina:    a.Responsaveis.ProducaoCortina,
			ProducaoCalha:      a.Responsaveis.ProducaoCalha,
			Instalador:         a.Responsaveis.Instalador,
			RecebimentoEstoque: a.Responsaveis.RecebimentoEstoque,
			SeparacaoExpedicao: a.Responsaveis.SeparacaoExpedicao,
		},
		CreatedBy: a.CreatedBy,
		UpdatedBy: a.UpdatedBy,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
		Version:   a.Version,
	}

	w := a.Workflow
	for _, f := range workflowFields {
		if ts := *f.field(&w); ts != nil {
			if it.Workflow == nil {
				it.Workflow = map[string]string{}
			}
			it.Workflow[f.key] = formatTime(*ts)
		}
	}

	for _, l := range a.Logs {
		it.Logs = append(it.Logs, ambienteLogItem{
			Status:      string(l.Status),
			Observacao:  l.Observacao,
			Timestamp:   formatTime(l.Timestamp),
			UsuarioID:   l.UsuarioID,
			UsuarioNome: l.UsuarioNome,
		})
	}
	return it
}

func fromAmbienteItem(it ambienteItem) entities.Ambiente {
	a := entities.Ambiente{
		ID:        it.ID,
		ObraID:    it.ObraID,
		Codigo:    it.Codigo,
		Prefixo:   it.Prefixo,
		Sala:      it.Sala,
		Sequencia: it.Sequencia,
		Medidas: entities.Medidas{
			Largura:        it.Medidas.Largura,
			Altura:         it.Medidas.Altura,
			Recuo:          it.Medidas.Recuo,
			TipoInstalacao: entities.InstallationType(it.Medidas.TipoInstalacao),
		},
		Variaveis: entities.Variaveis{
			Trilho:           it.Variaveis.Trilho,
			TipoMontagem:     it.Variaveis.TipoMontagem,
			TecidoPrincipal:  it.Variaveis.TecidoPrincipal,
			TecidoSecundario: it.Variaveis.TecidoSecundario,
			Regras: entities.DiscountRules{
				DescontoTrilho:   it.Variaveis.Regras.DescontoTrilho,
				DescontoBlackout: it.Variaveis.Regras.DescontoBlackout,
				DescontoVoil:     it.Variaveis.Regras.DescontoVoil,
				AlturaInstalacao: it.Variaveis.Regras.AlturaInstalacao,
			},
		},
		Calculado: entities.Calculado{
			LarguraTrilho:  it.Calculado.LarguraTrilho,
			AlturaBlackout: it.Calculado.AlturaBlackout,
			AlturaVoil:     it.Calculado.AlturaVoil,
		},
		Status: entities.AmbienteStatus(it.Status).OrDefault(),
		Logs:   make([]entities.AmbienteLog, 0, len(it.Logs)),
		Responsaveis: entities.Responsaveis{
			ProducaoCortina:    it.Responsaveis.ProducaoCortina,
			ProducaoCalha:      it.Responsaveis.ProducaoCalha,
			Instalador:         it.Responsaveis.Instalador,
			RecebimentoEstoque: it.Responsaveis.RecebimentoEstoque,
			SeparacaoExpedicao: it.Responsaveis.SeparacaoExpedicao,
		},
		CreatedBy: it.CreatedBy,
		UpdatedBy: it.UpdatedBy,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		Version:   it.Version,
	}

	for _, f := range workflowFields {
		if raw, ok := it.Workflow[f.key]; ok {
			*f.field(&a.Workflow) = parseTimePtr(raw)
		}
	}

	for _, l := range it.Logs {
		a.Logs = append(a.Logs, entities.AmbienteLog{
			Status:      entities.AmbienteStatus(l.Status),
			Observacao:  l.Observacao,
			Timestamp:   parseTime(l.Timestamp),
			UsuarioID:   l.UsuarioID,
			UsuarioNome: l.UsuarioNome,
		})
	}
	return a
}
