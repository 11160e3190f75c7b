package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NafizUddin/Quickreads-Server-Side/internal/entity"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/store/mocks"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/testutil"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/usecase"
)

func intPtr(n int) *int { return &n }

func TestBookHandler_List_QuantityFilter(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		setupMock   func(m *mocks.MockBookRepository)
		expectedLen int
	}{
		{
			name:  "no filter",
			query: "",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Eq(usecase.ListParams{})).
					Return([]entity.Document{{"quantity": 0}, {"quantity": 1}, {"quantity": 5}}, nil)
			},
			expectedLen: 3,
		},
		{
			name:  "literal null means no filter",
			query: "?quantity=null",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Eq(usecase.ListParams{})).
					Return([]entity.Document{{"quantity": 0}, {"quantity": 1}, {"quantity": 5}}, nil)
			},
			expectedLen: 3,
		},
		{
			name:  "threshold keeps strictly greater",
			query: "?quantity=1",
			setupMock: func(m *mocks.MockBookRepository) {
				m.EXPECT().
					List(gomock.Any(), gomock.Eq(usecase.ListParams{MinQuantity: intPtr(1)})).
					Return([]entity.Document{{"quantity": 5}}, nil)
			},
			expectedLen: 1,
		},
		{
			name:        "malformed threshold matches nothing",
			query:       "?quantity=abc",
			setupMock:   func(m *mocks.MockBookRepository) {},
			expectedLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := mocks.NewMockBookRepository(ctrl)
			tt.setupMock(mockRepo)
			handler := NewBookHandler(mockRepo)

			r := testutil.NewRequest(http.MethodGet, "/api/books"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.List(w, r)

			assert.Equal(t, http.StatusOK, w.Code)
			var docs []map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
			assert.Len(t, docs, tt.expectedLen)
		})
	}
}

func TestBookHandler_List_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	mockRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, context.DeadlineExceeded)

	r := testutil.NewRequest(http.MethodGet, "/api/books", nil)
	w := httptest.NewRecorder()
	handler.List(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBookHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	doc := entity.Document{"name": "Dune", "bookCategory": "Sci-Fi", "quantity": float64(6)}
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Eq(doc)).
		Return(entity.InsertAck{Acknowledged: true, InsertedID: "65f0aa11bb22cc33dd44ee55"}, nil)

	r := testutil.NewRequest(http.MethodPost, "/api/books", doc)
	w := httptest.NewRecorder()
	handler.Create(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "65f0aa11bb22cc33dd44ee55", resp.Body["insertedId"])
}

func TestBookHandler_Subtree_ListByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	mockRepo.EXPECT().
		ListByCategory(gomock.Any(), "Sci-Fi").
		Return([]entity.Document{{"name": "Dune"}}, nil)

	r := testutil.NewRequest(http.MethodGet, "/api/books/Sci-Fi", nil)
	w := httptest.NewRecorder()
	handler.Subtree(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Dune", docs[0]["name"])
}

func TestBookHandler_Subtree_GetByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	mockRepo.EXPECT().
		GetByName(gomock.Any(), "Dune").
		Return(nil, nil)

	r := testutil.NewRequest(http.MethodGet, "/api/books/bookName/Dune", nil)
	w := httptest.NewRecorder()
	handler.Subtree(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `null`, w.Body.String())
}

func TestBookHandler_Subtree_GetByID(t *testing.T) {
	const id = "65f0aa11bb22cc33dd44ee55"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	mockRepo.EXPECT().
		GetByID(gomock.Any(), id).
		Return(entity.Document{"name": "Dune"}, nil)

	r := testutil.NewRequest(http.MethodGet, "/api/books/singleBook/"+id, nil)
	w := httptest.NewRecorder()
	handler.Subtree(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Dune", resp.Body["name"])
}

func TestBookHandler_Subtree_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	for _, id := range []string{"not-hex", "65f0aa11bb22cc33dd44ee5", "65f0aa11bb22cc33dd44ee555"} {
		r := testutil.NewRequest(http.MethodGet, "/api/books/singleBook/"+id, nil)
		w := httptest.NewRecorder()
		handler.Subtree(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code, "id %q", id)
	}
}

func TestBookHandler_Subtree_UpsertByID(t *testing.T) {
	const id = "65f0aa11bb22cc33dd44ee55"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	doc := entity.Document{"quantity": float64(9)}
	mockRepo.EXPECT().
		UpsertByID(gomock.Any(), id, gomock.Eq(doc)).
		Return(entity.UpdateAck{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil)

	r := testutil.NewRequest(http.MethodPut, "/api/books/singleBook/"+id, doc)
	w := httptest.NewRecorder()
	handler.Subtree(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, resp.Body["acknowledged"])
	assert.Equal(t, float64(1), resp.Body["upsertedCount"])
	assert.Equal(t, id, resp.Body["upsertedId"])
}

func TestBookHandler_Subtree_PatchByName_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	doc := entity.Document{"quantity": float64(2)}
	mockRepo.EXPECT().
		PatchByName(gomock.Any(), "Unknown Book", gomock.Eq(doc)).
		Return(entity.UpdateAck{Acknowledged: true, MatchedCount: 0, ModifiedCount: 0}, nil)

	r := testutil.NewRequest(http.MethodPatch, "/api/books/singleBook/Unknown%20Book", doc)
	w := httptest.NewRecorder()
	handler.Subtree(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, float64(0), resp.Body["matchedCount"])
	assert.Equal(t, float64(0), resp.Body["modifiedCount"])
}

func TestBookHandler_Subtree_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockBookRepository(ctrl)
	handler := NewBookHandler(mockRepo)

	r := testutil.NewRequest(http.MethodDelete, "/api/books/Sci-Fi", nil)
	w := httptest.NewRecorder()
	handler.Subtree(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
