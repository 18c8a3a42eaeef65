package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// TableNames holds the physical table names, usually taken from config.
type TableNames struct {
	Ambientes    string
	Obras        string
	Usuarios     string
	Notificacoes string
	Montagens    string
}

type tableDef struct {
	name       string
	attributes []types.AttributeDefinition
	indexes    []types.GlobalSecondaryIndex
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func gsi(name, hash, rangeKey string) types.GlobalSecondaryIndex {
	schema := []types.KeySchemaElement{{AttributeName: aws.String(hash), KeyType: types.KeyTypeHash}}
	if rangeKey != "" {
		schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(rangeKey), KeyType: types.KeyTypeRange})
	}
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  schema,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

func (n TableNames) definitions() []tableDef {
	return []tableDef{
		{
			name:       tableOrDefault(n.Ambientes, DefaultAmbientesTableName),
			attributes: []types.AttributeDefinition{stringAttr("id"), stringAttr("obra_id"), stringAttr("status")},
			indexes: []types.GlobalSecondaryIndex{
				gsi(AmbienteObraIndex, "obra_id", ""),
				gsi(AmbienteStatusIndex, "status", ""),
			},
		},
		{
			name:       tableOrDefault(n.Obras, DefaultObrasTableName),
			attributes: []types.AttributeDefinition{stringAttr("id")},
		},
		{
			name:       tableOrDefault(n.Usuarios, DefaultUsuariosTableName),
			attributes: []types.AttributeDefinition{stringAttr("id"), stringAttr("role")},
			indexes:    []types.GlobalSecondaryIndex{gsi(UserRoleIndex, "role", "")},
		},
		{
			name:       tableOrDefault(n.Notificacoes, DefaultNotificacoesTableName),
			attributes: []types.AttributeDefinition{stringAttr("id"), stringAttr("usuario_id"), stringAttr("created_at")},
			indexes:    []types.GlobalSecondaryIndex{gsi(NotificationUsuarioIndex, "usuario_id", "created_at")},
		},
		{
			name:       tableOrDefault(n.Montagens, DefaultMontagensTableName),
			attributes: []types.AttributeDefinition{stringAttr("id")},
		},
	}
}

// CreateTables creates every table the service uses and waits until they are active.
// Tables that already exist are left untouched. It returns the names it created.
func CreateTables(ctx context.Context, ddb *dynamodb.Client, names TableNames) ([]string, error) {
	var created []string
	for _, def := range names.definitions() {
		in := &dynamodb.CreateTableInput{
			TableName:            aws.String(def.name),
			AttributeDefinitions: def.attributes,
			KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
			BillingMode:          types.BillingModePayPerRequest,
		}
		if len(def.indexes) > 0 {
			in.GlobalSecondaryIndexes = def.indexes
		}

		if _, err := ddb.CreateTable(ctx, in); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return created, err
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(def.name)}, tableWaitTimeout); err != nil {
			return created, err
		}
		created = append(created, def.name)
	}
	return created, nil
}
