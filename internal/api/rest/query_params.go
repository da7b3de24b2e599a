package rest

import (
	"github.com/gin-gonic/gin"
)

const MAX_PAGE_SIZE = 100

// ListCurvesQueryParams holds query parameters for GET /curves
type ListCurvesQueryParams struct {
	State  string `form:"state"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ParseListCurvesQuery parses query parameters for GET /curves
func ParseListCurvesQuery(c *gin.Context) (*ListCurvesQueryParams, error) {
	var params ListCurvesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}

// ListEventsQueryParams holds query parameters for GET /curves/:id/events
type ListEventsQueryParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ParseListEventsQuery parses query parameters for GET /curves/:id/events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}
	if params.Limit <= 0 {
		params.Limit = 50
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	return &params, nil
}
