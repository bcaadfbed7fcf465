package models

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_JSONIsBareNumber(t *testing.T) {
	obj := CatalogObject{NGC: 5272, RA: MustDecimal("205.5484"), Dec: MustDecimal("28.3773"), Magnitude: MustDecimal("6.3")}

	b, err := json.Marshal(obj)
	require.NoError(t, err)

	assert.Contains(t, string(b), `"ra":205.5484`)
	assert.Contains(t, string(b), `"dec":28.3773`)
	assert.Contains(t, string(b), `"magnitude":6.3`)
}

func TestDecimal_UnmarshalNumberAndString(t *testing.T) {
	var req CreateObjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ra": 0.1, "dec": "-12.30", "magnitude": 0}`), &req))

	require.NotNil(t, req.RA)
	require.NotNil(t, req.Dec)
	require.NotNil(t, req.Magnitude)
	assert.True(t, req.RA.Equal(MustDecimal("0.1").Decimal))
	assert.True(t, req.Dec.Equal(MustDecimal("-12.3").Decimal))
	assert.True(t, req.Magnitude.IsZero())
	assert.Nil(t, req.NGC)
}

func TestDecimal_NoFloatDrift(t *testing.T) {
	a := MustDecimal("0.1")
	b := MustDecimal("0.2")

	assert.Equal(t, "0.3", a.Add(b.Decimal).String())
}

func TestDecimal_DynamoDBRoundTrip(t *testing.T) {
	d := MustDecimal("13.703")

	av, err := d.MarshalDynamoDBAttributeValue()
	require.NoError(t, err)

	n, ok := av.(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "13.703", n.Value)

	var back Decimal
	require.NoError(t, back.UnmarshalDynamoDBAttributeValue(av))
	assert.True(t, back.Equal(d.Decimal))
}

func TestDecimal_DynamoDBRejectsOtherTypes(t *testing.T) {
	var d Decimal
	err := d.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberBOOL{Value: true})
	assert.Error(t, err)
}

func TestNewDecimal_Invalid(t *testing.T) {
	_, err := NewDecimal("twelve")
	assert.Error(t, err)
}

func TestCatalogObject_Summary(t *testing.T) {
	obj := CatalogObject{
		NGC:           224,
		Name:          "Andromeda Galaxy",
		Type:          "Galaxy",
		Constellation: "Andromeda",
		RA:            MustDecimal("10.6847"),
		Dec:           MustDecimal("41.2687"),
		Magnitude:     MustDecimal("3.44"),
		Collection:    "Messier",
	}

	b, err := json.Marshal(obj.Summary())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	assert.NotContains(t, fields, "name")
	assert.NotContains(t, fields, "type")
	assert.NotContains(t, fields, "collection")
	assert.Equal(t, float64(224), fields["ngc"])
	assert.Equal(t, "Andromeda", fields["constellation"])
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	b, err := json.Marshal(User{Email: "a@x.com", Password: "$2a$05$hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
}

func TestUser_HasFavourite(t *testing.T) {
	u := User{Favourites: []int64{31, 5272}}
	assert.True(t, u.HasFavourite(5272))
	assert.False(t, u.HasFavourite(7))
	assert.Equal(t, 1, FavouriteIndex(u.Favourites, 5272))
	assert.Equal(t, -1, FavouriteIndex(nil, 5272))
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	resp := info.Response()

	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "N/A", resp.BuildDate)
	assert.Equal(t, "N/A", resp.BuildCommit)
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
}

func TestDecimal_InStoreRange(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"13.703", true},
		{"-90", true},
		{"1e125", true},
		{"1e126", false},
		{"1e-130", true},
		{"1e-131", false},
		{"-1e2000000", false},
		{"12345678901234567890123456789012345678", true},
		{"123456789012345678901234567890123456789", false},
		{"1000000000000000000000000000000000000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MustDecimal(tt.in).InStoreRange())
		})
	}
}
