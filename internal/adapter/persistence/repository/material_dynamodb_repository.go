package repository

import (
	"context"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMaterialesTableName = "materiales_acumulado"
	materialesBitacoraIDIndex  = "bitacora_id-index"
)

type materialItem struct {
	ID            string `dynamodbav:"id"`
	BitacoraID    string `dynamodbav:"bitacora_id"`
	Origen        string `dynamodbav:"origen"`
	Brigada       string `dynamodbav:"brigada"`
	Codigo        string `dynamodbav:"codigo"`
	Descripcion   string `dynamodbav:"descripcion"`
	Unidad        string `dynamodbav:"unidad,omitempty"`
	Cantidad      string `dynamodbav:"cantidad"`
	CostoUnitario string `dynamodbav:"costo_unitario,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// MaterialDynamoRepository persists MaterialEntry rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: bitacora_id-index (PK: bitacora_id, SK: created_at)
//
// Cart saves go through TransactWriteItems so a batch is stored all-or-nothing.

type MaterialDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb dynamoAPI) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALES_TABLE", defaultMaterialesTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.MaterialEntry) (entities.MaterialEntry, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.MaterialEntry{}, err
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
		return entities.MaterialEntry{}, translateWriteError(err)
	}
	return m, nil
}

func (r *MaterialDynamoRepository) CreateBatch(ctx context.Context, lines []entities.MaterialEntry) ([]entities.MaterialEntry, error) {
	if len(lines) == 0 {
		return []entities.MaterialEntry{}, nil
	}

	writes := make([]types.TransactWriteItem, 0, len(lines))
	for _, m := range lines {
		av, err := attributevalue.MarshalMap(toMaterialItem(m))
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return nil, translateWriteError(err)
	}
	return lines, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaterialEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaterialEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaterialEntry{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaterialEntry{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) ListByBitacoraID(ctx context.Context, bitacoraID string) ([]entities.MaterialEntry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(materialesBitacoraIDIndex),
		KeyConditionExpression: aws.String("bitacora_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bitacoraID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]entities.MaterialEntry, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it materialItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMaterialItem(it))
		}
	}
	return items, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMaterialItem(m entities.MaterialEntry) materialItem {
	return materialItem{
		ID:            m.ID,
		BitacoraID:    m.BitacoraID,
		Origen:        m.Origen,
		Brigada:       m.Brigada,
		Codigo:        m.Codigo,
		Descripcion:   m.Descripcion,
		Unidad:        m.Unidad,
		Cantidad:      decimalToString(m.Cantidad),
		CostoUnitario: decimalToString(m.CostoUnitario),
		CreatedAt:     timeToString(m.CreatedAt),
	}
}

func fromMaterialItem(it materialItem) entities.MaterialEntry {
	return entities.MaterialEntry{
		ID:            it.ID,
		BitacoraID:    it.BitacoraID,
		Origen:        it.Origen,
		Brigada:       it.Brigada,
		Codigo:        it.Codigo,
		Descripcion:   it.Descripcion,
		Unidad:        it.Unidad,
		Cantidad:      decimalFromString(it.Cantidad),
		CostoUnitario: decimalFromString(it.CostoUnitario),
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
