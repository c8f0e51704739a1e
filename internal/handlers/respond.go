package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/grievance-portal/grievance-api/internal/errors"
	"github.com/grievance-portal/grievance-api/internal/services"
)

func init() {
	binding.EnableDecoderDisallowUnknownFields = true

	// Report json field names in validation messages.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON binds the request body into obj. Unknown fields are rejected.
func bindJSON(c *gin.Context, obj interface{}) error {
	return c.ShouldBindJSON(obj)
}

// respondBindError sends a 400 for a request that failed bindJSON.
func respondBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fieldErrorMessage(fe))
		}
		apierrors.BadRequest(c, strings.Join(messages, "; "))
		return
	}
	apierrors.BadRequest(c, "Invalid request body")
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for '%s'", fe.Field(), fe.Tag())
	}
}

// respondError maps a service error onto its HTTP status. Anything that is
// not a known kind is a 500 with a fixed message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		apierrors.BadRequest(c, messageOf(err, services.ErrValidation))
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrUnauthenticated):
		apierrors.Unauthorized(c, messageOf(err, services.ErrUnauthenticated))
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, messageOf(err, services.ErrForbidden))
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, messageOf(err, services.ErrNotFound))
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, messageOf(err, services.ErrConflict))
	default:
		_ = c.Error(err)
		apierrors.InternalError(c)
	}
}

// messageOf strips the kind prefix from a wrapped service error.
func messageOf(err, kind error) string {
	return strings.TrimPrefix(err.Error(), kind.Error()+": ")
}
