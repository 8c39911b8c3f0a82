package controllers

import (
	"ClinicDesk/util"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

/*
* Bind the JSON body into obj
* An empty body binds as an empty object so the required-field checks report it
* Anything unparseable is answered with 400 here and false is returned
 */
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, util.MessageResponse(util.INVALID_REQUEST_BODY))
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	c.JSON(util.StatusFor(err), util.FailedResponse(err))
}
