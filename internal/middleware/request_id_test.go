package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestRequestID(t *testing.T) {
	suite.Run(t, new(RequestIDSuite))
}

func (s *RequestIDSuite) SetupTest() {
	s.e = echo.New()
}

func (s *RequestIDSuite) TestGeneratesTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		traceID := GetTraceID(c)
		s.NotEmpty(traceID)
		_, err := uuid.Parse(traceID)
		s.NoError(err, "generated trace ID must be a UUID")
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	s.NotEmpty(rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDSuite) TestPropagatesIncomingTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		s.Equal("client-supplied-id", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	s.Equal("client-supplied-id", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDSuite) TestGetTraceID_MissingReturnsEmpty() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Empty(GetTraceID(c))
}
