package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldError names a request field and the binding rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// AbortWithError keeps err on the gin context for the error handler and logging.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindError answers 400 for a body that failed to decode or validate.
func AbortWithBindError(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", FieldErrors(err))
}

// FieldErrors lists the offending fields of a binding error by their JSON path,
// or returns nil when err is not about specific fields.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: jsonPath(fe), Rule: fe.Tag()})
		}
		return out
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{Field: typeErr.Field, Rule: "type"}}
	}
	return nil
}

// jsonPath keeps the JSON-named segments of a validator namespace such as
// "CheckSeriesRequest.CheckConflictsRequest.tenant_id". Struct and embedded
// type names are exported Go identifiers and are dropped.
func jsonPath(fe validator.FieldError) string {
	var kept []string
	for _, part := range strings.Split(fe.Namespace(), ".") {
		if part == "" || unicode.IsUpper([]rune(part)[0]) {
			continue
		}
		kept = append(kept, part)
	}
	if len(kept) == 0 {
		return fe.Field()
	}
	return strings.Join(kept, ".")
}
