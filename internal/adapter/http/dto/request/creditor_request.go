package request

type CreateCreditorRequest struct {
	Name          string `json:"name" binding:"required"`
	ReissueMargin int    `json:"reissue_margin"`
}

type UpdateCreditorRequest struct {
	ReissueMargin *int `json:"reissue_margin" binding:"required"`
}
