package departmenterrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Department name is required",
		http.StatusBadRequest,
	)
	ErrPositionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Position titles must not be empty",
		http.StatusBadRequest,
	)
	ErrDepartmentExists = apperror.New(
		apperror.CodeConflict,
		"A department with this name already exists",
		http.StatusConflict,
	)
	ErrCreateFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not create department",
		http.StatusInternalServerError,
	)
)
