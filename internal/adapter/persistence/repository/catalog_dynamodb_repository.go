package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bitacora_materiales/internal/domain/entities"
	"bitacora_materiales/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCatalogoClaroTableName = "catalogo_claro_resumido"
	defaultCatalogoCicsaTableName = "catalogo_cicsa_materiales"

	// BatchWriteItem accepts at most 25 requests.
	dynamoBatchWriteLimit = 25
	maxUnprocessedRetries = 5
)

type catalogItem struct {
	Codigo                 string `dynamodbav:"codigo"`
	Descripcion            string `dynamodbav:"descripcion"`
	Unidad                 string `dynamodbav:"unidad,omitempty"`
	NombreSimple           string `dynamodbav:"nombre_simple,omitempty"`
	Categoria              string `dynamodbav:"categoria,omitempty"`
	Subcategoria           string `dynamodbav:"subcategoria,omitempty"`
	SubcategoriaSecundaria string `dynamodbav:"subcategoria_secundaria,omitempty"`
	CodigoSecundario       string `dynamodbav:"codigo_secundario,omitempty"`
	Moneda                 string `dynamodbav:"moneda,omitempty"`
	Costo                  string `dynamodbav:"costo"`
	Activo                 bool   `dynamodbav:"activo"`
	SearchText             string `dynamodbav:"search_text"`
}

// CatalogDynamoRepository reads and loads the origin catalogs.
//
// Table requirements (one table per origin):
//   - PK: codigo (string)
//   - search_text: lower-cased "codigo descripcion nombre_simple", written on import
//
// DynamoDB has no ILIKE, so Search scans with contains() on search_text and
// stops once limit matches have been collected.

type CatalogDynamoRepository struct {
	ddb    dynamoAPI
	tables map[entities.Origin]string
	sleep  func(time.Duration)
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb dynamoAPI) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb: ddb,
		tables: map[entities.Origin]string{
			entities.OriginClaro: getenvDefault("CATALOGO_CLARO_TABLE", defaultCatalogoClaroTableName),
			entities.OriginCicsa: getenvDefault("CATALOGO_CICSA_TABLE", defaultCatalogoCicsaTableName),
		},
		sleep: time.Sleep,
	}
}

func (r *CatalogDynamoRepository) table(origin entities.Origin) (string, error) {
	t, ok := r.tables[origin]
	if !ok {
		return "", entities.ErrInvalidOrigin
	}
	return t, nil
}

func (r *CatalogDynamoRepository) Search(ctx context.Context, origin entities.Origin, term string, limit int) ([]entities.CatalogItem, error) {
	table, err := r.table(origin)
	if err != nil {
		return nil, err
	}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(table),
		FilterExpression: aws.String("#activo = :true AND contains(#search_text, :q)"),
		ExpressionAttributeNames: map[string]string{
			"#activo":      "activo",
			"#search_text": "search_text",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
			":q":    &types.AttributeValueMemberS{Value: strings.ToLower(term)},
		},
	})

	items := make([]entities.CatalogItem, 0, limit)
	for p.HasMorePages() && len(items) < limit {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it catalogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCatalogItem(it))
			if len(items) == limit {
				break
			}
		}
	}
	return items, nil
}

func (r *CatalogDynamoRepository) UpsertBatch(ctx context.Context, origin entities.Origin, items []entities.CatalogItem) error {
	table, err := r.table(origin)
	if err != nil {
		return err
	}

	for start := 0; start < len(items); start += dynamoBatchWriteLimit {
		end := min(start+dynamoBatchWriteLimit, len(items))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, c := range items[start:end] {
			av, err := attributevalue.MarshalMap(toCatalogItem(c))
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}
		if err := r.writeWithRetry(ctx, map[string][]types.WriteRequest{table: reqs}); err != nil {
			return err
		}
	}
	return nil
}

func (r *CatalogDynamoRepository) writeWithRetry(ctx context.Context, pending map[string][]types.WriteRequest) error {
	backoff := 100 * time.Millisecond
	for attempt := 0; len(pending) > 0; attempt++ {
		if attempt > maxUnprocessedRetries {
			return fmt.Errorf("catalog upsert: %d tables still unprocessed after %d retries", len(pending), maxUnprocessedRetries)
		}
		if attempt > 0 {
			r.sleep(backoff)
			backoff *= 2
		}
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
	}
	return nil
}

func toCatalogItem(c entities.CatalogItem) catalogItem {
	return catalogItem{
		Codigo:                 c.Codigo,
		Descripcion:            c.Descripcion,
		Unidad:                 c.Unidad,
		NombreSimple:           c.NombreSimple,
		Categoria:              c.Categoria,
		Subcategoria:           c.Subcategoria,
		SubcategoriaSecundaria: c.SubcategoriaSecundaria,
		CodigoSecundario:       c.CodigoSecundario,
		Moneda:                 c.Moneda,
		Costo:                  decimalToString(c.Costo),
		Activo:                 c.Activo,
		SearchText:             c.SearchText(),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogItem {
	return entities.CatalogItem{
		Codigo:                 it.Codigo,
		Descripcion:            it.Descripcion,
		Unidad:                 it.Unidad,
		NombreSimple:           it.NombreSimple,
		Categoria:              it.Categoria,
		Subcategoria:           it.Subcategoria,
		SubcategoriaSecundaria: it.SubcategoriaSecundaria,
		CodigoSecundario:       it.CodigoSecundario,
		Moneda:                 it.Moneda,
		Costo:                  decimalFromString(it.Costo),
		Activo:                 it.Activo,
	}
}
