package ticketservice

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops360/models"
)

func TestGetTicketsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockTicketService(ctrl)
	handler := NewTicketHandler(mockService)

	tickets := []models.Ticket{
		{ID: uuid.New(), Title: "Printer jam", Status: models.TicketOpen, Priority: models.PriorityLow},
	}

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			ListTickets(gomock.Any()).
			Return(tickets, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
		respRecorder := httptest.NewRecorder()

		handler.GetTickets(respRecorder, req)

		assert.Equal(t, http.StatusOK, respRecorder.Code)

		var got []models.Ticket
		require.NoError(t, json.Unmarshal(respRecorder.Body.Bytes(), &got))
		assert.Len(t, got, 1)
		assert.Equal(t, tickets[0].ID, got[0].ID)
	})

	t.Run("service error", func(t *testing.T) {
		mockService.EXPECT().
			ListTickets(gomock.Any()).
			Return(nil, pkgerrors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
		respRecorder := httptest.NewRecorder()

		handler.GetTickets(respRecorder, req)

		assert.Equal(t, http.StatusInternalServerError, respRecorder.Code)
	})
}

func TestCreateTicketHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockTicketService(ctrl)
	handler := NewTicketHandler(mockService)

	created := models.Ticket{
		ID:          uuid.New(),
		Title:       "Printer jam",
		Description: "Tray 2 stuck",
		Priority:    models.PriorityLow,
		Status:      models.TicketOpen,
		OrgID:       "demo_org",
	}

	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		mockServiceReturn  models.Ticket
		mockServiceErr     error
		expectedStatusCode int
		expectedField      string
	}{
		{
			name:               "success with explicit priority",
			body:               `{"title":"Printer jam","description":"Tray 2 stuck","priority":"LOW"}`,
			expectServiceCall:  true,
			mockServiceReturn:  created,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "title too short is rejected with field detail",
			body:               `{"title":"ab","description":"Tray 2 stuck"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedField:      "title",
		},
		{
			name:               "description too short is rejected with field detail",
			body:               `{"title":"Printer jam","description":"ab"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedField:      "description",
		},
		{
			name:               "unknown priority is rejected",
			body:               `{"title":"Printer jam","description":"Tray 2 stuck","priority":"CRITICAL"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedField:      "priority",
		},
		{
			name:               "malformed body",
			body:               `{"title":`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing seeded requester is a server error with a hint",
			body:               `{"title":"Printer jam","description":"Tray 2 stuck"}`,
			expectServiceCall:  true,
			mockServiceErr:     pkgerrors.Wrap(ErrRequesterMissing, "seed user admin@demo.local missing: create the account before filing tickets"),
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:               "store failure on insert",
			body:               `{"title":"Printer jam","description":"Tray 2 stuck"}`,
			expectServiceCall:  true,
			mockServiceErr:     pkgerrors.New("db error"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectServiceCall {
				mockService.EXPECT().
					CreateTicket(gomock.Any(), gomock.Any()).
					Return(tc.mockServiceReturn, tc.mockServiceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewBufferString(tc.body))
			respRecorder := httptest.NewRecorder()

			handler.CreateTicket(respRecorder, req)

			assert.Equal(t, tc.expectedStatusCode, respRecorder.Code)

			if tc.expectedStatusCode == http.StatusOK {
				var got models.Ticket
				require.NoError(t, json.Unmarshal(respRecorder.Body.Bytes(), &got))
				assert.NotEqual(t, uuid.Nil, got.ID)
				assert.Equal(t, models.TicketOpen, got.Status)
				assert.Equal(t, models.PriorityLow, got.Priority)
			}

			if tc.expectedField != "" {
				var payload struct {
					Error map[string][]string `json:"error"`
				}
				require.NoError(t, json.Unmarshal(respRecorder.Body.Bytes(), &payload))
				assert.Contains(t, payload.Error, tc.expectedField)
			}

			if tc.mockServiceErr != nil && pkgerrors.Is(tc.mockServiceErr, ErrRequesterMissing) {
				var payload struct {
					Error string `json:"error"`
				}
				require.NoError(t, json.Unmarshal(respRecorder.Body.Bytes(), &payload))
				assert.Contains(t, payload.Error, "admin@demo.local")
			}
		})
	}
}
