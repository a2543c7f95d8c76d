package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderKeepsCallerFields(t *testing.T) {
	body := []byte(`{"id":1718000000123,"date":"6/10/2024","status":"New","customer":"Ana","items":[{"sku":"A","qty":2}]}`)

	var o Order
	require.NoError(t, json.Unmarshal(body, &o))
	assert.Equal(t, int64(1718000000123), o.ID)
	assert.Equal(t, "6/10/2024", o.Date)
	assert.Equal(t, "New", o.Status)
	assert.Equal(t, "Ana", o.Fields["customer"])
	assert.NotContains(t, o.Fields, "id")
	assert.NotContains(t, o.Fields, "status")

	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(out))
}

func TestOrderRejectsNonObject(t *testing.T) {
	var o Order
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &o))
	assert.Error(t, json.Unmarshal([]byte(`null`), &o))
}

func TestOrderKeepsNonIntegerID(t *testing.T) {
	for _, body := range []string{
		`{"id":"abc","note":"x"}`,
		`{"id":1.5,"note":"x"}`,
		`{"id":1e21,"note":"x"}`,
	} {
		var o Order
		require.NoError(t, json.Unmarshal([]byte(body), &o), body)
		assert.Zero(t, o.ID, body)
		assert.Equal(t, "x", o.Fields["note"], body)

		out, err := json.Marshal(o)
		require.NoError(t, err)
		assert.JSONEq(t, body, string(out))
	}
}

func TestOrderServerFieldsWinOverKeptValues(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":1.5,"status":7,"customer":"Ana"}`), &o))

	o.ID = 42
	o.Status = OrderStatusNew
	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"date":"","status":"New","customer":"Ana"}`, string(out))
}

