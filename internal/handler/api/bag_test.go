//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"glisten-lounge/internal/handler/api"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/usecase"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBagUseCase struct {
	rm         *readmodel.BagRM
	err        error
	sessionIDs []string
}

func (s *stubBagUseCase) Get(_ context.Context, sessionID string) (*readmodel.BagRM, error) {
	s.sessionIDs = append(s.sessionIDs, sessionID)
	return s.rm, s.err
}

func (s *stubBagUseCase) AddItem(_ context.Context, sessionID string, _ string, _ uuid.UUID) (*readmodel.BagRM, error) {
	s.sessionIDs = append(s.sessionIDs, sessionID)
	return s.rm, s.err
}

func (s *stubBagUseCase) RemoveItem(_ context.Context, sessionID string, _ string) (*readmodel.BagRM, error) {
	s.sessionIDs = append(s.sessionIDs, sessionID)
	return s.rm, s.err
}

func (s *stubBagUseCase) Clear(_ context.Context, sessionID string) error {
	s.sessionIDs = append(s.sessionIDs, sessionID)
	return s.err
}

type BagHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubBagUseCase
	cfg    config.BagConfig
}

func (s *BagHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.cfg = config.NewTestConfig().Bag
	s.stub = &stubBagUseCase{rm: &readmodel.BagRM{Items: []readmodel.LineItemRM{}}}
	handler := api.NewBagHandler(s.stub, s.cfg)

	s.router.GET("/bag", handler.Get)
	s.router.DELETE("/bag", handler.Clear)
	s.router.POST("/bag/items", handler.AddItem)
	s.router.DELETE("/bag/items/:id", handler.RemoveItem)
}

func TestBagHandlerSuite(t *testing.T) {
	suite.Run(t, new(BagHandlerTestSuite))
}

func (s *BagHandlerTestSuite) do(method, url, body, sessionCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: s.cfg.CookieName, Value: sessionCookie})
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BagHandlerTestSuite) TestGet() {
	s.Run("mints a session cookie on first visit", func() {
		w := s.do(http.MethodGet, "/bag", "", "")

		s.Equal(http.StatusOK, w.Code)
		s.Require().Len(s.stub.sessionIDs, 1)

		cookies := w.Result().Cookies()
		s.Require().Len(cookies, 1)
		s.Equal(s.cfg.CookieName, cookies[0].Name)
		s.Equal(s.stub.sessionIDs[0], cookies[0].Value)
	})

	s.Run("reuses the existing session", func() {
		w := s.do(http.MethodGet, "/bag", "", "existing-session")

		s.Equal(http.StatusOK, w.Code)
		s.Equal("existing-session", s.stub.sessionIDs[len(s.stub.sessionIDs)-1])
		s.Empty(w.Result().Cookies())
	})

	s.Run("storage failure maps to 500", func() {
		s.stub.err = errors.New("bolt file locked")
		defer func() { s.stub.err = nil }()

		w := s.do(http.MethodGet, "/bag", "", "existing-session")
		s.Equal(http.StatusInternalServerError, w.Code)
	})
}

func (s *BagHandlerTestSuite) TestAddItem() {
	s.Run("success", func() {
		body := `{"kind": "service", "itemId": "` + uuid.NewString() + `"}`
		w := s.do(http.MethodPost, "/bag/items", body, "existing-session")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("malformed item id is rejected", func() {
		w := s.do(http.MethodPost, "/bag/items", `{"kind": "service", "itemId": "nope"}`, "existing-session")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown kind is rejected by binding", func() {
		body := `{"kind": "bundle", "itemId": "` + uuid.NewString() + `"}`
		w := s.do(http.MethodPost, "/bag/items", body, "existing-session")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown item maps to 404", func() {
		s.stub.err = usecase.ErrItemNotFound
		defer func() { s.stub.err = nil }()

		body := `{"kind": "service", "itemId": "` + uuid.NewString() + `"}`
		w := s.do(http.MethodPost, "/bag/items", body, "existing-session")
		s.Equal(http.StatusNotFound, w.Code)
		s.Contains(w.Body.String(), "Item not found")
	})
}

func (s *BagHandlerTestSuite) TestRemoveItem() {
	w := s.do(http.MethodDelete, "/bag/items/some-id", "", "existing-session")
	s.Equal(http.StatusOK, w.Code)
}

func (s *BagHandlerTestSuite) TestClear() {
	w := s.do(http.MethodDelete, "/bag", "", "existing-session")
	s.Equal(http.StatusNoContent, w.Code)
}
