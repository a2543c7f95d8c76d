package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductKeepsExtraProperties(t *testing.T) {
	body := `{"id":3,"name":"Chomba","price":4500,"category":"uniforme-primaria","stock":7,"image":"fas fa-tshirt","size":"M","colors":["azul","blanco"]}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, 4500.0, p.Price)
	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, "M", p.Fields["size"])
	assert.NotContains(t, p.Fields, "name")
	assert.Empty(t, p.Mistyped())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out))
}

func TestProductKeepsUnexpectedValues(t *testing.T) {
	body := `{"id":"p-1","name":"A","price":null,"stock":"many"}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	assert.Zero(t, p.ID)
	assert.Zero(t, p.Stock)
	assert.Equal(t, []string{"stock"}, p.Mistyped())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p-1","name":"A","price":null,"category":"","stock":"many","image":""}`, string(out))
}

func TestProductPatchApply(t *testing.T) {
	p := Product{ID: 1, Name: "A", Price: 10, Stock: 5}
	price := 20.0
	ProductPatch{Price: &price}.Apply(&p)

	assert.Equal(t, Product{ID: 1, Name: "A", Price: 20, Stock: 5}, p)
}

func TestProductPatchDecode(t *testing.T) {
	var patch ProductPatch
	require.NoError(t, json.Unmarshal([]byte(`{"id":999,"name":"B","price":null,"size":"L"}`), &patch))

	require.NotNil(t, patch.Name)
	assert.Equal(t, "B", *patch.Name)
	assert.Nil(t, patch.Price)
	assert.Equal(t, map[string]any{"price": nil, "size": "L"}, patch.Fields)
	assert.Empty(t, patch.Mistyped())
}

func TestProductPatchApplyNullAndExtras(t *testing.T) {
	p := Product{ID: 1, Name: "A", Price: 10, Stock: 5, Fields: map[string]any{"size": "M", "color": "azul"}}

	var patch ProductPatch
	require.NoError(t, json.Unmarshal([]byte(`{"price":null,"size":"L"}`), &patch))
	patch.Apply(&p)

	assert.Equal(t, int64(1), p.ID)
	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"A","price":null,"category":"","stock":5,"image":"","size":"L","color":"azul"}`, string(out))

	// a later typed value replaces the null
	price := 30.0
	ProductPatch{Price: &price}.Apply(&p)
	assert.NotContains(t, p.Fields, "price")
	assert.Equal(t, 30.0, p.Price)
}
