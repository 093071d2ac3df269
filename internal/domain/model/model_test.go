package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusNew(t *testing.T) {
	assert.Equal(t, "new", string(OrderStatusNew))
}

func TestRatingDecodesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Rating
	}{
		{"number", `5`, 5},
		{"string", `"4"`, 4},
		{"padded string", `" 3 "`, 3},
		{"float", `4.0`, 4},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Rating
			require.NoError(t, json.Unmarshal([]byte(tc.input), &r))
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRatingDecodesGarbageAsZero(t *testing.T) {
	for _, input := range []string{`"five"`, `true`, `{}`} {
		r := Rating(3)
		require.NoError(t, json.Unmarshal([]byte(input), &r), input)
		assert.Zero(t, r, input)
	}
}

func TestAmountDecodesNumbersAndStrings(t *testing.T) {
	var payload struct {
		Price *Amount `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":"1500.50"}`), &payload))
	require.NotNil(t, payload.Price)
	assert.InDelta(t, 1500.50, payload.Price.Value, 0.001)
	assert.Empty(t, payload.Price.Text)

	require.NoError(t, json.Unmarshal([]byte(`{"price":2000}`), &payload))
	assert.InDelta(t, 2000, payload.Price.Value, 0.001)

	payload.Price = nil
	require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &payload))
	assert.Nil(t, payload.Price)
}

func TestAmountKeepsFreeFormText(t *testing.T) {
	var payload struct {
		Price *Amount `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":"от 5 000 ₽"}`), &payload))
	require.NotNil(t, payload.Price)
	assert.Equal(t, "от 5 000 ₽", payload.Price.Text)
	assert.Equal(t, "от 5 000 ₽", payload.Price.String())

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Equal(t, `{"price":"от 5 000 ₽"}`, string(data))

	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`true`), &a))
	assert.Equal(t, Amount{}, a)
}

func TestAmountEncodesNumbers(t *testing.T) {
	data, err := json.Marshal(NewAmount(2500))
	require.NoError(t, err)
	assert.Equal(t, `2500`, string(data))
	assert.Equal(t, "1500.5", Amount{Value: 1500.5}.String())
}

func TestReviewApproveIsOneWay(t *testing.T) {
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	review := Review{ID: 1, Name: "Anna"}

	assert.True(t, review.Approve(first))
	assert.True(t, review.Approved)
	require.NotNil(t, review.ApprovedAt)
	assert.Equal(t, first, *review.ApprovedAt)

	assert.False(t, review.Approve(second))
	assert.Equal(t, first, *review.ApprovedAt)
}

func TestReviewEncodesNullApprovedAt(t *testing.T) {
	data, err := json.Marshal(Review{ID: 7, Name: "Anna", Rating: 5, Text: "Great"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "approvedAt")
	assert.Nil(t, decoded["approvedAt"])
	assert.Equal(t, false, decoded["approved"])
	assert.EqualValues(t, 5, decoded["rating"])
}

func TestOrderJSONKeys(t *testing.T) {
	price := Amount{Value: 3000}
	data, err := json.Marshal(Order{ID: 1, Name: "Ivan", ProjectType: "research", PaymentMethod: "card", Price: &price, Status: OrderStatusNew})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"id", "name", "phone", "email", "projectType", "description", "paymentMethod", "price", "timestamp", "status"} {
		assert.Contains(t, decoded, key)
	}
	assert.NotContains(t, decoded, "projectName")
}
