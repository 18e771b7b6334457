package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"optionpricer/internal/db/models/postgres/public/model"
	"optionpricer/internal/domain"
	"optionpricer/internal/repository"
	"optionpricer/internal/service"
	"optionpricer/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                       *sql.DB
	PricingService           service.PricingService
	PricingHistoryRepository repository.PricingHistoryRepository
	QuoteRepository          repository.QuoteRepository
	AlpacaRepository         repository.AlpacaRepository
	GptRepository            repository.GptRepository
	SavedPayoffRepository    repository.SavedPayoffRepository
	ApiRequestRepository     repository.ApiRequestRepository
	JwtSecret                string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to optionpricer"})
	})
	router.POST("/price", m.price)
	router.POST("/benchmark", m.benchmark)
	router.POST("/constructPayoffExpression", m.constructPayoffExpression)
	router.GET("/spot/:symbol", m.spot)
	router.GET("/riskFreeRate", m.riskFreeRate)
	router.GET("/pricingHistory", m.getPricingHistory)

	authed := router.Group("/", m.authMiddleware)
	authed.POST("/savePayoff", m.savePayoff)
	authed.GET("/savedPayoffs", m.getSavedPayoffs)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps the domain error taxonomy onto status codes:
// validation and expression failures are the caller's to fix (400), numeric
// domain failures during simulation are 422, anything else is a 500.
func returnErrorJson(err error, c *gin.Context) {
	var (
		validationErr *domain.ValidationError
		exprErr       *domain.ExpressionError
		evalErr       *domain.EvaluationError
	)

	code := 500
	kind := "internal"
	switch {
	case errors.As(err, &validationErr):
		code, kind = 400, validationErr.Kind
	case errors.As(err, &exprErr):
		code, kind = 400, exprErr.Kind
	case errors.As(err, &evalErr):
		code, kind = 422, evalErr.Kind
	}

	returnErrorJsonCode(err, c, code, kind)
}

func returnErrorJsonCode(err error, c *gin.Context, code int, kind string) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error":     err.Error(),
		"errorKind": kind,
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddleware tags every request with a uuid and, when a db is
// wired, records the request/response bodies. Recording failures only warn.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New()
	ctx.Set("requestID", requestID.String())

	if m.Db == nil || m.ApiRequestRepository == nil {
		ctx.Next()
		return
	}

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		zap.S().Warnf("failed to get raw request data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		APIRequestID: requestID,
		IPAddress:    util.StrPointer(ctx.ClientIP()),
		Method:       ctx.Request.Method,
		Route:        ctx.Request.URL.Path,
		RequestBody:  util.StrPointer(string(body)),
		StartTs:      start,
	})
	if err != nil {
		zap.S().Warnf("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StrPointer(w.body.String())

		if err := m.ApiRequestRepository.Update(m.Db, *req); err != nil {
			zap.S().Warnf("failed to update api request: %v", err)
		}
	}
}

func requestIDFromContext(c *gin.Context) *uuid.UUID {
	requestIDAny, ok := c.Get("requestID")
	if !ok {
		return nil
	}
	requestIDStr, ok := requestIDAny.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(requestIDStr)
	if err != nil {
		return nil
	}
	return &id
}
