package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError maps a use case error onto a response.
func FromError(c *gin.Context, err error) {
	if fields := FieldErrors(err); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, HTTPError{
			Code:    CodeValidation,
			Message: "Please correct the highlighted fields.",
			Fields:  fields,
		})
		return
	}

	switch code := BusinessCode(err); code {
	case "":
		Internal(c, "internal_error", "Something went wrong.")
	case "not_found", "patient_not_found", "appointment_not_found", "invoice_not_found",
		"staff_not_found", "salary_not_found", "attendance_not_found", "feedback_not_found":
		NotFound(c, code, "Record not found.")
	case "unknown_entity", "unknown_section":
		NotFound(c, code, messageFor(code))
	case "duplicate_phone", "submission_in_flight", "salary_already_exists":
		Conflict(c, code, messageFor(code))
	case "storage_write_failed", "backup_failed":
		Internal(c, code, messageFor(code))
	default:
		BadRequest(c, code, messageFor(code))
	}
}

func messageFor(code string) string {
	switch code {
	case "duplicate_phone":
		return "A patient with this phone number already exists."
	case "submission_in_flight":
		return "This form is already being saved."
	case "storage_write_failed":
		return "Could not save data. Storage may be full."
	case "invalid_state":
		return "This action is not allowed in the current state."
	case "salary_already_exists":
		return "A salary for this staff member and month already exists."
	case "invoice_already_paid", "salary_already_paid":
		return "This record is already paid."
	case "invalid_status":
		return "Unknown appointment status."
	case "invalid_date":
		return "Dates must be yyyy-mm-dd."
	case "import_missing_date_time":
		return "The file needs both a date and a time column."
	case "import_unreadable_file":
		return "The file could not be read."
	case "import_not_supported":
		return "This record type can only be imported from JSON."
	case "unsupported_file_format":
		return "Use an .xlsx, .csv or .json file."
	case "unknown_entity", "unknown_section":
		return "Unknown record type."
	case "outside_clinic_hours":
		return "The visit must fit inside clinic hours."
	case "backup_disabled":
		return "Cloud backup is not configured."
	case "backup_failed":
		return "The backup could not be uploaded."
	default:
		return "Request could not be completed."
	}
}
