package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"exam-registry-api/internal/application/ports"
	domain "exam-registry-api/internal/domain/user"
	userDB "exam-registry-api/internal/infrastructure/db/postgres/user"
	"exam-registry-api/internal/interface/api/rest/dto/envelope"
	"exam-registry-api/internal/interface/api/rest/dto/user"
	"exam-registry-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService  ports.UserService
	photoService ports.PhotoService
	logger       *zap.Logger
}

// NewUserController registers the user routes. The guard middleware is a
// pass-through unless an admin JWT secret is configured.
func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	photoService ports.PhotoService,
	logger *zap.Logger,
	guard gin.HandlerFunc,
) *UserController {
	uc := &UserController{
		userService:  userService,
		photoService: photoService,
		logger:       logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, guard, uc.CreateUserHandler)
	r.PUT(RouteUser, guard, uc.UpdateUserHandler)
	r.DELETE(RouteUser, guard, uc.DeleteUserHandler)
	r.POST(RouteUserPhoto, guard, uc.UploadPhotoHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	f, errs := validator.ValidateListQuery(validator.ListQuery{
		Page:           c.Query("page"),
		Limit:          c.Query("limit"),
		IncludeDeleted: c.Query("include_deleted"),
		Search:         c.Query("search"),
		FromDate:       c.Query("from_date"),
		ToDate:         c.Query("to_date"),
	})
	if errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Error(validator.Message(errs)))
		return
	}

	users, total, err := uc.userService.FindUsers(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to get users"))
		uc.logger.Error("FindUsers() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.SuccessPage(
		user.ToResponseUsers(users),
		envelope.NewPagination(total, f.Page, f.Limit),
	))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("user_id must be a positive integer"))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to get a user"))
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(http.StatusNotFound, envelope.Error("user not found"))
		return
	}

	c.JSON(http.StatusOK, envelope.Success("", user.ToResponseUser(*u)))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("invalid request body"))
		return
	}
	if errs := validator.ValidateCreateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Error(validator.Message(errs)))
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error(err.Error()))
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), uDomain)
	if err != nil {
		if errors.Is(err, userDB.ErrResultRef) {
			c.JSON(http.StatusBadRequest, envelope.Error(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to create a user"))
		uc.logger.Error("CreateUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, envelope.Success("User successfully created", user.ToResponseUser(*u)))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("user_id must be a positive integer"))
		return
	}

	var req user.UpdateRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("invalid request body"))
		return
	}
	if errs := validator.ValidateUpdateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, envelope.Error(validator.Message(errs)))
		return
	}

	p, err := user.ToDomainPatch(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error(err.Error()))
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), domain.ID(id), p)
	if err != nil {
		if errors.Is(err, userDB.ErrResultRef) {
			c.JSON(http.StatusBadRequest, envelope.Error(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to update a user"))
		uc.logger.Error("UpdateUser() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(http.StatusNotFound, envelope.Error("user not found or already deleted"))
		return
	}

	c.JSON(http.StatusOK, envelope.Success("User successfully updated", user.ToResponseUser(*u)))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("user_id must be a positive integer"))
		return
	}

	if err = uc.userService.DeleteUser(c.Request.Context(), domain.ID(id)); err != nil {
		if errors.Is(err, userDB.ErrNotFound) {
			c.JSON(http.StatusNotFound, envelope.Error(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to delete user"))
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, envelope.Success(fmt.Sprintf("User %d successfully deleted", id), nil))
}

func (uc *UserController) UploadPhotoHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("user_id must be a positive integer"))
		return
	}

	in, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope.Error("photo file is required"))
		return
	}

	u, err := uc.photoService.UploadPhoto(c.Request.Context(), domain.ID(id), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, envelope.Error("failed to upload photo"))
		uc.logger.Error("UploadPhoto() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(http.StatusNotFound, envelope.Error("user not found or already deleted"))
		return
	}

	c.JSON(http.StatusOK, envelope.Success("Photo successfully uploaded", user.ToResponseUser(*u)))
}
