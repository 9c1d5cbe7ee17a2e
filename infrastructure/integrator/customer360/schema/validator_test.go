package schema

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Customer(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid profile with string encoded fields",
			payload: `{"account_id":"ACC-1","account_name":"Acme","annual_revenue":1200.5,"quarterly_revenue":"[1,2,3,4]","subsidiaries":"[]"}`,
		},
		{
			name:    "nulls are accepted",
			payload: `{"account_id":"ACC-1","annual_revenue":null,"health_status":null}`,
		},
		{
			name:    "integer revenue beyond float precision",
			payload: `{"account_id":"ACC-1","annual_revenue":12345678901234567890,"open_tickets":3}`,
		},
		{
			name:    "missing account id",
			payload: `{"account_name":"Acme"}`,
			wantErr: true,
		},
		{
			name:    "revenue sent as text",
			payload: `{"account_id":"ACC-1","annual_revenue":"lots"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			payload: `<html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(Customer, []byte(tt.payload))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidPayload), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidator_ValidateEach(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, v.ValidateEach(Alert, []byte(`[{"alert_id":"AL-1","alert_type":"credit_hold","severity":"HIGH"}]`)))
	assert.NoError(t, v.ValidateEach(Alert, []byte(`[]`)))
	assert.NoError(t, v.ValidateEach(Recommendation, []byte(`null`)))

	err = v.ValidateEach(Recommendation, []byte(`[{"recommendation_id":"R-1"},{"title":"no id"}]`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "recommendation[1]")

	assert.ErrorIs(t, v.ValidateEach(Alert, []byte(`{"alert_id":"AL-1"}`)), ErrInvalidPayload)
}

func TestValidator_Segment(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(Segment, []byte(`{"segment_info":{},"top_recommendations":[],"critical_alerts":[],"segment_stats":{}}`)))
	assert.ErrorIs(t, v.Validate(Segment, []byte(`{"segment_info":{}}`)), ErrInvalidPayload)
}

func TestDecode_KeepsNumbersExact(t *testing.T) {
	doc, err := decode([]byte(`{"annual_revenue":12345678901234567890,"items":[1.5]}`))
	require.NoError(t, err)

	obj, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "12345678901234567890", fmt.Sprint(obj["annual_revenue"]))
	assert.Len(t, obj["items"], 1)

	_, err = decode([]byte(`{"account_id":`))
	assert.Error(t, err)
}

func TestValidator_UnknownSchema(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	err = v.Validate("invoice", []byte(`{}`))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidPayload))
}
