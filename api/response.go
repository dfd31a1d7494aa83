package api

import (
	"errors"
	"log"
	"net/http"

	"expensebook/middleware"
	"expensebook/models"
	"expensebook/store"

	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse 列表响应结构
type ListResponse struct {
	Total int         `json:"total"`
	List  interface{} `json:"list"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ValidationFailed 400 校验错误响应
func ValidationFailed(c *gin.Context, err *models.ValidationError) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: err.Message,
		Data:    gin.H{"field": err.Field},
	})
}

// StoreError 存储层错误响应，记录不存在返回 404，其余返回 500
func StoreError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, "记录不存在")
		return
	}
	log.Printf("[%s] %s: %v", middleware.GetRequestID(c), fallback, err)
	InternalError(c, SafeErrorMessage(err, fallback))
}
