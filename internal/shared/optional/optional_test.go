package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	CanOpen    Value[bool]   `json:"can_open"`
	ValidUntil Value[string] `json:"valid_until"`
	LockerID   Value[uint]   `json:"locker_id"`
}

func TestValue_UnmarshalPresence(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"can_open": false, "valid_until": null}`), &p))

	assert.True(t, p.CanOpen.IsSet())
	assert.True(t, p.CanOpen.HasValue())
	v, ok := p.CanOpen.Get()
	assert.True(t, ok)
	assert.False(t, v)

	assert.True(t, p.ValidUntil.IsSet())
	assert.True(t, p.ValidUntil.IsNull())
	assert.False(t, p.ValidUntil.HasValue())

	assert.False(t, p.LockerID.IsSet())
	assert.Nil(t, p.LockerID.Ptr())
}

func TestValue_UnmarshalTypeMismatch(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"locker_id": "one"}`), &p)
	assert.Error(t, err)
}

func TestValue_Ptr(t *testing.T) {
	p := Of(uint(3)).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, uint(3), *p)
}

func TestValue_Marshal(t *testing.T) {
	out, err := json.Marshal(patch{CanOpen: Of(true), ValidUntil: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"can_open":true,"valid_until":null,"locker_id":null}`, string(out))
}
