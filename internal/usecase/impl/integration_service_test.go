package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"
	mockService "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIntegrationService_CheckIntegrations(t *testing.T) {
	client := mockService.NewMockIntegrationClient(t)
	client.EXPECT().Get(mock.Anything, "/api/health").
		Return(&service.APIEnvelope{Success: true, Data: json.RawMessage(`{"uptime":42}`)}, nil).Once()
	client.EXPECT().Get(mock.Anything, "/api/telegram/status").
		Return(&service.APIEnvelope{Success: false, Message: "bot not configured"}, nil).Once()
	client.EXPECT().Get(mock.Anything, "/api/products").
		Return(nil, errors.New("circuit breaker is open")).Once()

	svc := NewIntegrationService(IntegrationServiceParams{Client: client, Logger: newTestLogger()})

	statuses := svc.CheckIntegrations(context.Background())
	require.Len(t, statuses, 3)

	byName := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		byName[s.Name] = s.Healthy
	}
	assert.Equal(t, map[string]bool{"health": true, "telegram": false, "products": false}, byName)

	assert.Equal(t, "health", statuses[0].Name)
	assert.JSONEq(t, `{"uptime":42}`, string(statuses[0].Data))
	assert.Equal(t, "bot not configured", statuses[1].Message)
	assert.Equal(t, "/api/products", statuses[2].Path)
	assert.Contains(t, statuses[2].Message, "circuit breaker")
}
