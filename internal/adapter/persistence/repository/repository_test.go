package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"bitacora_materiales/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo records calls and returns canned outputs.
type fakeDynamo struct {
	getOut   *dynamodb.GetItemOutput
	putIn    []*dynamodb.PutItemInput
	deleteIn []*dynamodb.DeleteItemInput
	queryOut []*dynamodb.QueryOutput
	queryIn  []*dynamodb.QueryInput
	scanOut  []*dynamodb.ScanOutput
	scanIn   []*dynamodb.ScanInput
	batchOut []*dynamodb.BatchWriteItemOutput
	batchIn  []*dynamodb.BatchWriteItemInput
	txIn     []*dynamodb.TransactWriteItemsInput
	txErr    error
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = append(f.putIn, in)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = append(f.deleteIn, in)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = append(f.queryIn, in)
	if len(f.queryOut) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOut[0]
	f.queryOut = f.queryOut[1:]
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = append(f.scanIn, in)
	if len(f.scanOut) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	out := f.scanOut[0]
	f.scanOut = f.scanOut[1:]
	return out, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batchIn = append(f.batchIn, in)
	if len(f.batchOut) == 0 {
		return &dynamodb.BatchWriteItemOutput{}, nil
	}
	out := f.batchOut[0]
	f.batchOut = f.batchOut[1:]
	return out, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.txIn = append(f.txIn, in)
	if f.txErr != nil {
		return nil, f.txErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestBitacoraDynamoRepository_GetByID(t *testing.T) {
	t.Run("not found returns zero value", func(t *testing.T) {
		repo := NewBitacoraDynamoRepository(&fakeDynamo{})
		b, err := repo.GetByID(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "" {
			t.Fatalf("expected zero bitacora, got %+v", b)
		}
	})

	t.Run("maps crews", func(t *testing.T) {
		fake := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: mustMarshal(t, bitacoraItem{
			ID:          "b-1",
			Titulo:      "Tendido fibra",
			Bri1Oficial: "Cuadrilla Norte",
			Bri3Oficial: "Cuadrilla Sur",
		})}}
		repo := NewBitacoraDynamoRepository(fake)
		b, err := repo.GetByID(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := b.Brigadas()
		if len(got) != 2 || got[0] != "Cuadrilla Norte" || got[1] != "Cuadrilla Sur" {
			t.Fatalf("unexpected brigadas: %v", got)
		}
	})
}

func TestMaterialDynamoRepository(t *testing.T) {
	created := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	entry := entities.MaterialEntry{
		ID:            "m-1",
		BitacoraID:    "b-1",
		Origen:        "Claro",
		Brigada:       "Cuadrilla Norte",
		Codigo:        "A1",
		Descripcion:   "Cable",
		Unidad:        "M",
		Cantidad:      decimal.RequireFromString("2.5"),
		CostoUnitario: decimal.RequireFromString("14.55"),
		CreatedAt:     created,
	}

	t.Run("create uses conditional put", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewMaterialDynamoRepository(fake)
		if _, err := repo.Create(context.Background(), entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.putIn) != 1 {
			t.Fatalf("expected 1 put, got %d", len(fake.putIn))
		}
		if aws.ToString(fake.putIn[0].ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected condition: %s", aws.ToString(fake.putIn[0].ConditionExpression))
		}
		cantidad := fake.putIn[0].Item["cantidad"].(*types.AttributeValueMemberS).Value
		if cantidad != "2.5" {
			t.Fatalf("expected cantidad 2.5, got %s", cantidad)
		}
	})

	t.Run("create batch is a single transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewMaterialDynamoRepository(fake)
		second := entry
		second.ID = "m-2"
		second.Codigo = "B2"
		out, err := repo.CreateBatch(context.Background(), []entities.MaterialEntry{entry, second})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(out))
		}
		if len(fake.txIn) != 1 || len(fake.txIn[0].TransactItems) != 2 {
			t.Fatalf("expected one transaction with 2 writes, got %+v", fake.txIn)
		}
	})

	t.Run("create batch propagates transaction failure", func(t *testing.T) {
		boom := errors.New("transaction canceled")
		repo := NewMaterialDynamoRepository(&fakeDynamo{txErr: boom})
		if _, err := repo.CreateBatch(context.Background(), []entities.MaterialEntry{entry}); !errors.Is(err, boom) {
			t.Fatalf("expected %v, got %v", boom, err)
		}
	})

	t.Run("list follows pages on the bitacora index", func(t *testing.T) {
		first := mustMarshal(t, toMaterialItem(entry))
		second := entry
		second.ID = "m-2"
		fake := &fakeDynamo{queryOut: []*dynamodb.QueryOutput{
			{Items: []map[string]types.AttributeValue{first}, LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "m-1"}}},
			{Items: []map[string]types.AttributeValue{mustMarshal(t, toMaterialItem(second))}},
		}}
		repo := NewMaterialDynamoRepository(fake)
		items, err := repo.ListByBitacoraID(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if aws.ToString(fake.queryIn[0].IndexName) != materialesBitacoraIDIndex {
			t.Fatalf("expected index %s", materialesBitacoraIDIndex)
		}
		if !items[0].Cantidad.Equal(entry.Cantidad) || !items[0].CreatedAt.Equal(created) {
			t.Fatalf("round trip mismatch: %+v", items[0])
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		repo := NewMaterialDynamoRepository(&fakeDynamo{})
		got, err := repo.GetByID(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero entry, got %+v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewMaterialDynamoRepository(fake)
		if err := repo.Delete(context.Background(), "m-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.deleteIn) != 1 {
			t.Fatalf("expected 1 delete, got %d", len(fake.deleteIn))
		}
	})
}

func TestCatalogDynamoRepository(t *testing.T) {
	item := func(code string) map[string]types.AttributeValue {
		return mustMarshal(t, toCatalogItem(entities.CatalogItem{
			Codigo:      code,
			Descripcion: "Cable drop",
			Costo:       decimal.RequireFromString("1.5"),
			Activo:      true,
		}))
	}

	t.Run("search stops at limit", func(t *testing.T) {
		fake := &fakeDynamo{scanOut: []*dynamodb.ScanOutput{
			{Items: []map[string]types.AttributeValue{item("A1"), item("A2")}, LastEvaluatedKey: map[string]types.AttributeValue{"codigo": &types.AttributeValueMemberS{Value: "A2"}}},
			{Items: []map[string]types.AttributeValue{item("A3"), item("A4")}, LastEvaluatedKey: map[string]types.AttributeValue{"codigo": &types.AttributeValueMemberS{Value: "A4"}}},
			{Items: []map[string]types.AttributeValue{item("A5")}},
		}}
		repo := NewCatalogDynamoRepository(fake)
		got, err := repo.Search(context.Background(), entities.OriginClaro, "CABLE", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 items, got %d", len(got))
		}
		if len(fake.scanIn) != 2 {
			t.Fatalf("expected 2 scan pages, got %d", len(fake.scanIn))
		}
		q := fake.scanIn[0].ExpressionAttributeValues[":q"].(*types.AttributeValueMemberS).Value
		if q != "cable" {
			t.Fatalf("expected lower-cased term, got %q", q)
		}
		if aws.ToString(fake.scanIn[0].TableName) != defaultCatalogoClaroTableName {
			t.Fatalf("unexpected table %s", aws.ToString(fake.scanIn[0].TableName))
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		repo := NewCatalogDynamoRepository(&fakeDynamo{})
		if _, err := repo.Search(context.Background(), entities.Origin("movistar"), "cable", 20); !errors.Is(err, entities.ErrInvalidOrigin) {
			t.Fatalf("expected ErrInvalidOrigin, got %v", err)
		}
	})

	t.Run("upsert chunks and retries unprocessed", func(t *testing.T) {
		items := make([]entities.CatalogItem, 30)
		for i := range items {
			items[i] = entities.CatalogItem{Codigo: string(rune('A'+i%26)) + "x", Descripcion: "d", Activo: true}
		}
		leftover := map[string][]types.WriteRequest{
			defaultCatalogoCicsaTableName: {{PutRequest: &types.PutRequest{Item: item("A1")}}},
		}
		fake := &fakeDynamo{batchOut: []*dynamodb.BatchWriteItemOutput{
			{UnprocessedItems: leftover},
			{},
			{},
		}}
		repo := NewCatalogDynamoRepository(fake)
		var slept []time.Duration
		repo.sleep = func(d time.Duration) { slept = append(slept, d) }

		if err := repo.UpsertBatch(context.Background(), entities.OriginCicsa, items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.batchIn) != 3 {
			t.Fatalf("expected 3 batch calls, got %d", len(fake.batchIn))
		}
		if n := len(fake.batchIn[0].RequestItems[defaultCatalogoCicsaTableName]); n != dynamoBatchWriteLimit {
			t.Fatalf("expected first chunk of %d, got %d", dynamoBatchWriteLimit, n)
		}
		if n := len(fake.batchIn[2].RequestItems[defaultCatalogoCicsaTableName]); n != 5 {
			t.Fatalf("expected last chunk of 5, got %d", n)
		}
		if len(slept) != 1 {
			t.Fatalf("expected one backoff, got %v", slept)
		}
	})

	t.Run("upsert gives up after retries", func(t *testing.T) {
		leftover := map[string][]types.WriteRequest{
			defaultCatalogoClaroTableName: {{PutRequest: &types.PutRequest{Item: item("A1")}}},
		}
		outs := make([]*dynamodb.BatchWriteItemOutput, maxUnprocessedRetries+1)
		for i := range outs {
			outs[i] = &dynamodb.BatchWriteItemOutput{UnprocessedItems: leftover}
		}
		repo := NewCatalogDynamoRepository(&fakeDynamo{batchOut: outs})
		repo.sleep = func(time.Duration) {}
		err := repo.UpsertBatch(context.Background(), entities.OriginClaro, []entities.CatalogItem{{Codigo: "A1"}})
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}
