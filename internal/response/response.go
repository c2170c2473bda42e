package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the structured error payload. Success responses carry the
// documented resource shapes directly (the site client consumes bare
// arrays and objects), so only errors get an envelope.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Hint    string            `json:"hint,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

// Fail sends an error response with an error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, errorResponse{Error: ErrorBody{Code: code, Message: GetMessage(code)}})
}

// FailWithHint sends an error response with additional operator guidance.
func FailWithHint(c *gin.Context, statusCode int, code ErrCode, hint string) {
	c.JSON(statusCode, errorResponse{Error: ErrorBody{Code: code, Message: GetMessage(code), Hint: hint}})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, errorResponse{Error: ErrorBody{Code: code, Message: GetMessage(code), Fields: fields}})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: ErrorBody{Code: code, Message: GetMessage(code)}})
}

// AbortFailWithHint aborts the chain with an error response carrying a hint.
func AbortFailWithHint(c *gin.Context, statusCode int, code ErrCode, hint string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: ErrorBody{Code: code, Message: GetMessage(code), Hint: hint}})
}
