package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type feeDoc struct {
	Amount decimal.Decimal `bson:"amount"`
}

func TestDecimalCodec_RoundTripsAsDecimal128(t *testing.T) {
	registry := Registry()

	original := feeDoc{Amount: decimal.RequireFromString("23085.00")}
	payload, err := bson.MarshalWithRegistry(registry, original)
	require.NoError(t, err)

	var raw bson.Raw = payload
	value := raw.Lookup("amount")
	assert.Equal(t, bsontype.Decimal128, value.Type)

	var restored feeDoc
	require.NoError(t, bson.UnmarshalWithRegistry(registry, payload, &restored))
	assert.True(t, original.Amount.Equal(restored.Amount))
}

func TestDecimalCodec_PreservesFractionalPrecision(t *testing.T) {
	registry := Registry()

	original := feeDoc{Amount: decimal.RequireFromString("0.1")}
	payload, err := bson.MarshalWithRegistry(registry, original)
	require.NoError(t, err)

	var restored feeDoc
	require.NoError(t, bson.UnmarshalWithRegistry(registry, payload, &restored))
	assert.Equal(t, "0.1", restored.Amount.String(), "no float drift through storage")
}

func TestDecimalCodec_DecodesLegacyScalarTypes(t *testing.T) {
	registry := Registry()

	cases := []struct {
		name string
		doc  bson.D
		want string
	}{
		{"string", bson.D{{Key: "amount", Value: "123.45"}}, "123.45"},
		{"int32", bson.D{{Key: "amount", Value: int32(42)}}, "42"},
		{"int64", bson.D{{Key: "amount", Value: int64(8000)}}, "8000"},
		{"double", bson.D{{Key: "amount", Value: float64(2.5)}}, "2.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := bson.Marshal(tc.doc)
			require.NoError(t, err)

			var restored feeDoc
			require.NoError(t, bson.UnmarshalWithRegistry(registry, payload, &restored))
			assert.Equal(t, tc.want, restored.Amount.String())
		})
	}
}

func TestDecimalCodec_NullDecodesToZero(t *testing.T) {
	payload, err := bson.Marshal(bson.D{{Key: "amount", Value: nil}})
	require.NoError(t, err)

	var restored feeDoc
	require.NoError(t, bson.UnmarshalWithRegistry(Registry(), payload, &restored))
	assert.True(t, restored.Amount.IsZero())
}
