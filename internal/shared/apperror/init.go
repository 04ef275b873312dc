package apperror

import (
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var exposeInternal atomic.Bool

// Init registers json tag names on gin's validator so validation errors
// report "rejection_reason" instead of "RejectionReason".
func Init() {
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

// ExposeInternalErrors controls whether ToHTTP puts the raw cause of an
// unexpected error into the response details. Only enabled in development.
func ExposeInternalErrors(v bool) {
	exposeInternal.Store(v)
}
