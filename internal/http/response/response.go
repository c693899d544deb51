package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the response envelope shared by every endpoint.
type Body struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{
		StatusCode: CodeSuccess,
		Msg:        "ok",
		Data:       data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Body{
		StatusCode: CodeSuccess,
		Msg:        "ok",
		Data:       data,
	})
}

// Error writes an error envelope with a matching HTTP status.
func Error(c *gin.Context, httpStatus, code int, msg string) {
	c.JSON(httpStatus, Body{
		StatusCode: code,
		Msg:        msg,
	})
}

// ErrorData writes an error envelope carrying extra data.
func ErrorData(c *gin.Context, httpStatus, code int, msg string, data interface{}) {
	c.JSON(httpStatus, Body{
		StatusCode: code,
		Msg:        msg,
		Data:       data,
	})
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, msg)
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, CodeNotFound, msg)
}

// Conflict writes a 409 envelope.
func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, CodeConflict, msg)
}

// TooManyRequests writes a 429 envelope.
func TooManyRequests(c *gin.Context, msg string) {
	Error(c, http.StatusTooManyRequests, CodeTooManyRequests, msg)
}

// Internal writes a 500 envelope.
func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, CodeInternal, msg)
}
