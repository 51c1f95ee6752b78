package request

type CreateCarRequest struct {
	Make        string `json:"make" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Year        int    `json:"year" binding:"required,min=1900,max=2100"`
	Description string `json:"description"`
}

type UpdateCarRequest struct {
	Make        string `json:"make" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Year        int    `json:"year" binding:"required,min=1900,max=2100"`
	Description string `json:"description"`
}
