package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireConfirm gates destructive endpoints: deletes only proceed
// when the caller sends ?confirm=true. Returns false after writing the
// 400 response.
func requireConfirm(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		RespondError(c, http.StatusBadRequest, "confirm_required",
			fmt.Errorf("destructive operation requires confirm=true"))
		return false
	}
	return true
}

// pathID parses the named path parameter as a UUID, writing a 400 on
// failure.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id",
			fmt.Errorf("invalid %s: %w", name, err))
		return uuid.Nil, false
	}
	return id, true
}

func formInt(c *gin.Context, name string, defaultVal int) int {
	v := c.PostForm(name)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// optionalFormInt distinguishes an absent or malformed field (nil)
// from an explicit value, including zero.
func optionalFormInt(c *gin.Context, name string) *int {
	v := c.PostForm(name)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &i
}

func formBool(c *gin.Context, name string, defaultVal bool) bool {
	v := c.PostForm(name)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func formFloat(c *gin.Context, name string, defaultVal float64) float64 {
	v := c.PostForm(name)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func formUUID(c *gin.Context, name string) uuid.UUID {
	id, err := uuid.Parse(c.PostForm(name))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// optionalFormFile returns the uploaded file under the given field, or
// nil when the request carries none.
func optionalFormFile(c *gin.Context, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}
