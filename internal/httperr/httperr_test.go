package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, err)
	return w.Code
}

func TestFromErrorStatus(t *testing.T) {
	ve := &ValidationError{}
	ve.Add("phone", "invalid")

	cases := []struct {
		err  error
		want int
	}{
		{ve, http.StatusUnprocessableEntity},
		{ErrBusiness("patient_not_found"), http.StatusNotFound},
		{ErrBusiness("unknown_section"), http.StatusNotFound},
		{ErrBusiness("duplicate_phone"), http.StatusConflict},
		{ErrBusiness("salary_already_exists"), http.StatusConflict},
		{ErrBusiness("storage_write_failed"), http.StatusInternalServerError},
		{ErrBusiness("invoice_already_paid"), http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("%v: status = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestValidationErrKeepsFirstMessage(t *testing.T) {
	var ve ValidationError
	if ve.Err() != nil {
		t.Fatalf("empty validation error should be nil")
	}
	ve.Add("name", "required")
	ve.Add("name", "too long")
	if ve.Fields["name"] != "required" {
		t.Fatalf("name = %q", ve.Fields["name"])
	}
	if BusinessCode(ve.Err()) != CodeValidation {
		t.Fatalf("code = %q", BusinessCode(ve.Err()))
	}
}
