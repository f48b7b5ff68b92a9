package book

type CreateBookReq struct {
	Name   string `json:"name" validate:"required"`
	Author string `json:"author" validate:"required"`
}

type BookResp struct {
	Name     string `json:"name"`
	Author   string `json:"author"`
	Reserved bool   `json:"reserved"`
}
