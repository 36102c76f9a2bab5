package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, chairHandler *ChairHandler, estateHandler *EstateHandler, initializeHandler *InitializeHandler) http.Handler {
	t.Helper()
	if chairHandler == nil {
		chairHandler = NewChairHandler(nil, nil, nil, nil, nil, nil)
	}
	if estateHandler == nil {
		estateHandler = NewEstateHandler(nil, nil, nil, nil, nil, nil, nil, nil)
	}
	if initializeHandler == nil {
		initializeHandler = NewInitializeHandler(nil)
	}
	srv := NewServer("0", initializeHandler, chairHandler, estateHandler, http.NotFoundHandler(), &testLogger{})
	return srv.Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, target, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestChairSearchEndpoint(t *testing.T) {
	sampleChair := domain.Chair{ID: 1, Name: "Throne", Price: 15000, Stock: 3}

	t.Run("valid search returns count and chairs", func(t *testing.T) {
		searchUC := &fakeSearchChairsUC{
			fn: func(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error) {
				assert.Equal(t, int64(0), page.Page)
				assert.Equal(t, int64(20), page.PerPage)
				require.NotNil(t, filters.PriceRangeID)
				assert.Equal(t, int64(1), *filters.PriceRangeID)
				return &domain.ChairSearchResult{Count: 1, Chairs: []domain.Chair{sampleChair}}, nil
			},
		}
		handler := newTestRouter(t, NewChairHandler(searchUC, nil, nil, nil, nil, nil), nil, nil)

		rec := doRequest(t, handler, http.MethodGet, "/api/chair/search?page=0&perPage=20&priceRangeId=1", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ChairSearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Count)
		require.Len(t, resp.Chairs, 1)
		assert.Equal(t, "Throne", resp.Chairs[0].Name)
	})

	t.Run("missing pagination is a 400", func(t *testing.T) {
		handler := newTestRouter(t, nil, nil, nil)
		rec := doRequest(t, handler, http.MethodGet, "/api/chair/search?priceRangeId=1", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative page is a 400", func(t *testing.T) {
		handler := newTestRouter(t, nil, nil, nil)
		rec := doRequest(t, handler, http.MethodGet, "/api/chair/search?page=-1&perPage=20&priceRangeId=1", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric range id is a 400", func(t *testing.T) {
		handler := newTestRouter(t, nil, nil, nil)
		rec := doRequest(t, handler, http.MethodGet, "/api/chair/search?page=0&perPage=20&priceRangeId=abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no recognized facet is a 400", func(t *testing.T) {
		searchUC := &fakeSearchChairsUC{
			fn: func(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error) {
				return nil, domain.ErrNoSearchCondition
			},
		}
		handler := newTestRouter(t, NewChairHandler(searchUC, nil, nil, nil, nil, nil), nil, nil)
		rec := doRequest(t, handler, http.MethodGet, "/api/chair/search?page=0&perPage=20", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty result serializes chairs as an array", func(t *testing.T) {
		searchUC := &fakeSearchChairsUC{
			fn: func(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error) {
				return &domain.ChairSearchResult{Count: 0, Chairs: nil}, nil
			},
		}
		handler := newTestRouter(t, NewChairHandler(searchUC, nil, nil, nil, nil, nil), nil, nil)
		rec := doRequest(t, handler, http.MethodGet, "/api/chair/search?page=0&perPage=20&priceRangeId=0", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"chairs":[]`)
	})
}

func TestChairDetailEndpoint(t *testing.T) {
	t.Run("sold-out chair is a 404", func(t *testing.T) {
		detailsUC := &fakeGetChairDetailsUC{
			fn: func(ctx context.Context, id int64) (*domain.Chair, error) {
				return nil, domain.ErrSoldOut
			},
		}
		handler := newTestRouter(t, NewChairHandler(nil, detailsUC, nil, nil, nil, nil), nil, nil)
		rec := doRequest(t, handler, http.MethodGet, "/api/chair/7", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		handler := newTestRouter(t, nil, nil, nil)
		rec := doRequest(t, handler, http.MethodGet, "/api/chair/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChairBuyEndpoint(t *testing.T) {
	t.Run("purchase with email succeeds", func(t *testing.T) {
		buyUC := &fakeBuyChairUC{
			fn: func(ctx context.Context, id int64, email string) error {
				assert.Equal(t, int64(42), id)
				assert.Equal(t, "buyer@example.com", email)
				return nil
			},
		}
		handler := newTestRouter(t, NewChairHandler(nil, nil, buyUC, nil, nil, nil), nil, nil)

		body := bytes.NewBufferString(`{"email":"buyer@example.com"}`)
		rec := doRequest(t, handler, http.MethodPost, "/api/chair/buy/42", "application/json", body)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing email is a 400", func(t *testing.T) {
		handler := newTestRouter(t, nil, nil, nil)
		body := bytes.NewBufferString(`{}`)
		rec := doRequest(t, handler, http.MethodPost, "/api/chair/buy/42", "application/json", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing chair is a 404", func(t *testing.T) {
		buyUC := &fakeBuyChairUC{
			fn: func(ctx context.Context, id int64, email string) error {
				return domain.ErrNotFound
			},
		}
		handler := newTestRouter(t, NewChairHandler(nil, nil, buyUC, nil, nil, nil), nil, nil)
		body := bytes.NewBufferString(`{"email":"buyer@example.com"}`)
		rec := doRequest(t, handler, http.MethodPost, "/api/chair/buy/42", "application/json", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestChairImportEndpoint(t *testing.T) {
	buildMultipart := func(t *testing.T, field, content string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, "chairs.csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("upload returns 201", func(t *testing.T) {
		importUC := &fakeImportChairsUC{
			fn: func(ctx context.Context, csvData io.Reader) (int, error) {
				return 2, nil
			},
		}
		handler := newTestRouter(t, NewChairHandler(nil, nil, nil, importUC, nil, nil), nil, nil)
		body, contentType := buildMultipart(t, "chairs", "1,a,b,c,1,1,1,1,x,y,z,1,1\n")
		rec := doRequest(t, handler, http.MethodPost, "/api/chair", contentType, body)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing file field is a 400", func(t *testing.T) {
		handler := newTestRouter(t, nil, nil, nil)
		body, contentType := buildMultipart(t, "wrong_field", "1,a\n")
		rec := doRequest(t, handler, http.MethodPost, "/api/chair", contentType, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed CSV is a 400", func(t *testing.T) {
		importUC := &fakeImportChairsUC{
			fn: func(ctx context.Context, csvData io.Reader) (int, error) {
				return 0, domain.NewValidationError("chairs", "malformed CSV record")
			},
		}
		handler := newTestRouter(t, NewChairHandler(nil, nil, nil, importUC, nil, nil), nil, nil)
		body, contentType := buildMultipart(t, "chairs", "broken")
		rec := doRequest(t, handler, http.MethodPost, "/api/chair", contentType, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChairConditionEndpoint(t *testing.T) {
	conditionJSON := json.RawMessage(`{"price":{"ranges":[]}}`)
	handler := newTestRouter(t, NewChairHandler(nil, nil, nil, nil, nil, conditionJSON), nil, nil)

	rec := doRequest(t, handler, http.MethodGet, "/api/chair/search/condition", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(conditionJSON), rec.Body.String())
}

func TestInitializeEndpoint(t *testing.T) {
	initializeUC := &fakeInitializeUC{
		fn: func(ctx context.Context) error { return nil },
	}
	handler := newTestRouter(t, nil, nil, NewInitializeHandler(initializeUC))

	rec := doRequest(t, handler, http.MethodPost, "/initialize", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"language":"go"}`, rec.Body.String())
}

func TestLowPricedChairsEndpoint(t *testing.T) {
	lowPricedUC := &fakeLowPricedChairsUC{
		fn: func(ctx context.Context) ([]domain.Chair, error) {
			return []domain.Chair{{ID: 1, Price: 500}}, nil
		},
	}
	handler := newTestRouter(t, NewChairHandler(nil, nil, nil, nil, lowPricedUC, nil), nil, nil)

	rec := doRequest(t, handler, http.MethodGet, "/api/chair/low_priced", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"price":500`))
}
