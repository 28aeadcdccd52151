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

const defaultBitacorasTableName = "bitacoras"

type bitacoraItem struct {
	ID          string `dynamodbav:"id"`
	Titulo      string `dynamodbav:"titulo,omitempty"`
	Bri1Oficial string `dynamodbav:"bri1_oficial,omitempty"`
	Bri2Oficial string `dynamodbav:"bri2_oficial,omitempty"`
	Bri3Oficial string `dynamodbav:"bri3_oficial,omitempty"`
	Bri4Oficial string `dynamodbav:"bri4_oficial,omitempty"`
	Bri5Oficial string `dynamodbav:"bri5_oficial,omitempty"`
}

// BitacoraDynamoRepository reads logbooks from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Logbooks are created by the work-order system; this service only reads them.

type BitacoraDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBitacoraRepository = (*BitacoraDynamoRepository)(nil)

func NewBitacoraDynamoRepository(ddb dynamoAPI) *BitacoraDynamoRepository {
	return &BitacoraDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BITACORAS_TABLE", defaultBitacorasTableName),
	}
}

func (r *BitacoraDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bitacora, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Bitacora{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bitacora{}, nil
	}

	var it bitacoraItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bitacora{}, err
	}
	return entities.Bitacora{
		ID:      it.ID,
		Titulo:  it.Titulo,
		Oficial: [5]string{it.Bri1Oficial, it.Bri2Oficial, it.Bri3Oficial, it.Bri4Oficial, it.Bri5Oficial},
	}, nil
}
