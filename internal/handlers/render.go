package handlers

import (
	"net/http"

	apperrors "github.com/emarifer/go-gin-htmx-todoapp/internal/errors"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/session"
	"github.com/gin-gonic/gin"
)

// The views form a closed set; every page the app can produce is one
// of the template names below, rendered with a gin.H data bag.

func renderError400(c *gin.Context, reason, link string) {
	c.HTML(http.StatusBadRequest, "error_400.html", gin.H{
		"title":   "Error 400",
		"reason":  reason,
		"link":    link,
		"isError": true,
	})
}

func renderError404(c *gin.Context, reason, link string) {
	c.HTML(http.StatusNotFound, "error_404.html", gin.H{
		"title":   "Error 404",
		"reason":  reason,
		"link":    link,
		"isError": true,
	})
}

func renderError500(c *gin.Context, reason, link string) {
	c.HTML(http.StatusInternalServerError, "error_500.html", gin.H{
		"title":   "Error 500",
		"reason":  reason,
		"link":    link,
		"isError": true,
	})
}

// renderStorageError picks the page matching the error kind coming out
// of a todo mutation: stale ids get the 404 page, genuine storage
// failures the 500 page.
func renderStorageError(c *gin.Context, err error, link string) {
	if apperrors.KindOf(err) == apperrors.KindNotFound {
		renderError404(c, err.Error(), link)
		return
	}
	renderError500(c, err.Error(), link)
}

// addFlash queues a flash message, treating a session write failure as
// fatal to the request. Returns false when the request has been
// answered with a 500 page.
func addFlash(c *gin.Context, level, message string) bool {
	if err := session.AddFlash(c, level, message); err != nil {
		renderError500(c, err.Error(), "/")
		return false
	}
	return true
}
