package get_appointments

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	clientID := uuid.New()

	req, err := ToServiceRequest("2025-10-01", clientID.String(), "", "false")
	require.NoError(t, err)
	require.NotNil(t, req.Date)
	assert.Equal(t, "2025-10-01", req.Date.String())
	assert.Equal(t, clientID, *req.ClientID)
	assert.Nil(t, req.ReadingID)
	require.NotNil(t, req.Completed)
	assert.False(t, *req.Completed)

	req, err = ToServiceRequest("", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, req.Date)
	assert.Nil(t, req.ClientID)
	assert.Nil(t, req.Completed)

	_, err = ToServiceRequest("01.10.2025", "", "", "")
	assert.Error(t, err)
	_, err = ToServiceRequest("", "42", "", "")
	assert.Error(t, err)
	_, err = ToServiceRequest("", "", "", "maybe")
	assert.Error(t, err)
}
