package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"exam-registry-api/internal/application/ports"
	domain "exam-registry-api/internal/domain/result"
	resultDB "exam-registry-api/internal/infrastructure/db/postgres/result"
	"exam-registry-api/internal/interface/api/rest/dto/envelope"
	"exam-registry-api/internal/interface/api/rest/dto/result"
	"exam-registry-api/internal/interface/api/rest/validator"
)

type ResultController struct {
	resultService ports.ResultService
	logger        *zap.Logger
}

func NewResultController(
	r *gin.Engine,
	resultService ports.ResultService,
	logger *zap.Logger,
	guard gin.HandlerFunc,
) *ResultController {
	rc := &ResultController{
		resultService: resultService,
		logger:        logger,
	}

	r.GET(RouteResults, rc.GetResultsHandler)
	r.GET(RouteResult, rc.GetResultHandler)
	r.POST(RouteResults, guard, rc.CreateResultHandler)
	r.PUT(RouteResult, guard, rc.UpdateResultHandler)
	r.DELETE(RouteResult, guard, rc.DeleteResultHandler)

	return rc
}

func (rc *ResultController) GetResultsHandler(c *gin.Context) {
	results, err := rc.resultService.FindResults(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to get results"))
		rc.logger.Error("FindResults() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.Success("", result.ToResponseResults(results)))
}

func (rc *ResultController) GetResultHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("result_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("result_id must be a positive integer"))
		return
	}

	res, err := rc.resultService.FindResultByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to get a result"))
		rc.logger.Error("FindResultByID() error", zap.Error(err))
		return
	}

	if res == nil {
		c.JSON(http.StatusNotFound, envelope.Error("result not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Success("", result.ToResponseResult(*res)))
}

func (rc *ResultController) CreateResultHandler(c *gin.Context) {
	var req result.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("invalid request body"))
		return
	}
	if errs := validator.ValidateCreateResult(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Error(validator.Message(errs)))
		return
	}

	res, err := rc.resultService.CreateResult(c.Request.Context(), result.ToDomainResult(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to create a result"))
		rc.logger.Error("CreateResult() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Success("Result successfully created", result.ToResponseResult(*res)))
}

func (rc *ResultController) UpdateResultHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("result_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("result_id must be a positive integer"))
		return
	}

	var req result.UpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("invalid request body"))
		return
	}
	if errs := validator.ValidateUpdateResult(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Error(validator.Message(errs)))
		return
	}

	res, err := rc.resultService.UpdateResult(c.Request.Context(), domain.ID(id), result.ToDomainPatch(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to update a result"))
		rc.logger.Error("UpdateResult() error", zap.Error(err))
		return
	}

	if res == nil {
		c.JSON(http.StatusNotFound, envelope.Error("result not found or already deleted"))
		return
	}

	c.JSON(http.StatusOK, envelope.Success("Result successfully updated", result.ToResponseResult(*res)))
}

func (rc *ResultController) DeleteResultHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("result_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("result_id must be a positive integer"))
		return
	}

	if err = rc.resultService.DeleteResult(c.Request.Context(), domain.ID(id)); err != nil {
		if errors.Is(err, resultDB.ErrNotFound) {
			c.JSON(http.StatusNotFound, envelope.Error(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to delete result"))
		rc.logger.Error("DeleteResult() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(fmt.Sprintf("Result %d successfully deleted", id), nil))
}
